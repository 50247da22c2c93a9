package fzfalt

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Find the test for a file, or the file for a test"
	MsgRulesShort      = "List the filetype rules in effect"
	MsgGenConfigShort  = "Print or write a starter configuration file"
	MsgCompletionShort = "Generate shell completion script"

	MsgRulesLong = "Rules lists every filetype with its test and strip patterns after all\n" +
		"configuration layers are merged, and the files they were loaded from."
	MsgGenConfigLong = "Print the default configuration with every value commented out, or the\n" +
		"merged configuration with --effective. With -w the output is written to the\n" +
		"user config file (or .fzf-alt.toml at the project root with --project)\n" +
		"unless that file already exists."

	// Status messages
	MsgConfigWritten = "Wrote %s\n"
	MsgConfigExists  = "Config file already exists, nothing written"
	MsgUsageHint     = "Run 'fzf-alt --help' for usage."

	// Error messages
	MsgErrMissingArgs  = "expected <filename> <filetype> [alternate], got %d argument(s)"
	MsgErrTooManyArgs  = "expected at most 3 arguments, got %d"
	MsgErrUnknownShell = "unknown shell %q"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Use this config file instead of the user and project files"
	MsgFlagProjectRoot = "Project root (default: $FZF_ALT_PROJECT_ROOT, the git root, or the current directory)"
	MsgFlagRanker      = "Ranker command (default from [ranker] command)"
	MsgFlagTimeout     = "Give up on the ranker after this long, e.g. 5s (0 waits forever)"
	MsgFlagFilesFrom   = "Read candidate files from this file, or - for stdin"
	MsgFlagListCmd     = "Command whose output lists candidate files, e.g. \"git ls-files\""
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagWrite       = "Write the config to a file instead of stdout"
	MsgFlagProject     = "With -w, write .fzf-alt.toml at the project root"
	MsgFlagEffective   = "Print the merged configuration instead of the defaults"

	MsgVersionTemplate = "fzf-alt {{.Version}} (commit %s, built %s)\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
