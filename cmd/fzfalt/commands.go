package fzfalt

import (
	"fmt"
	"time"

	"github.com/arthur-debert/fzf-alt/internal/version"
	"github.com/arthur-debert/fzf-alt/pkg/commands"
	"github.com/arthur-debert/fzf-alt/pkg/commands/genconfig"
	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/logging"
	"github.com/arthur-debert/fzf-alt/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the fzf-alt command. Running it with a filename and a
// filetype resolves the alternate; subcommands inspect the configuration.
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity   int
		configFile  string
		projectRoot string
		rankerCmd   string
		timeout     time.Duration
		filesFrom   string
		listCmd     string
	)

	rootCmd := &cobra.Command{
		Use:     "fzf-alt <filename> <filetype> [alternate]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    resolveArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.ResolveOptions{
				Filename:      args[0],
				Filetype:      args[1],
				ProjectRoot:   projectRoot,
				ConfigFile:    configFile,
				RankerCommand: rankerCmd,
				Timeout:       timeout,
				FilesFrom:     filesFrom,
				ListCommand:   listCmd,
			}
			if len(args) == 3 {
				opts.Alternate = args[2]
			}

			result, err := commands.Resolve(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if !result.Found {
				return ErrNoAlternate
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Path)
			return err
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", "", MsgFlagProjectRoot)

	rootCmd.Flags().StringVar(&rankerCmd, "ranker", "", MsgFlagRanker)
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, MsgFlagTimeout)
	rootCmd.Flags().StringVar(&filesFrom, "files-from", "", MsgFlagFilesFrom)
	rootCmd.Flags().StringVar(&listCmd, "list-cmd", "", MsgFlagListCmd)
	_ = rootCmd.MarkFlagFilename("config", "toml")
	_ = rootCmd.MarkFlagFilename("files-from")
	rootCmd.MarkFlagsMutuallyExclusive("files-from", "list-cmd")

	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Commit, version.Date))
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.AddCommand(newRulesCmd(&projectRoot, &configFile))
	rootCmd.AddCommand(newGenConfigCmd(&projectRoot, &configFile))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// resolveArgs reports argument count problems as coded input errors
func resolveArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) < 2:
		return errors.Newf(errors.ErrInvalidInput, MsgErrMissingArgs, len(args))
	case len(args) > 3:
		return errors.Newf(errors.ErrInvalidInput, MsgErrTooManyArgs, len(args))
	}
	return nil
}

func newRulesCmd(projectRoot, configFile *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			listing, err := commands.ListRules(commands.ListRulesOptions{
				ProjectRoot: *projectRoot,
				ConfigFile:  *configFile,
			})
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(listing)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newGenConfigCmd(projectRoot, configFile *string) *cobra.Command {
	var write, project, effective bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.GenConfigOptions{
				ProjectRoot: *projectRoot,
				ConfigFile:  *configFile,
				Effective:   effective,
				Write:       write,
			}
			if project {
				opts.Target = genconfig.TargetProject
			}

			result, err := commands.GenConfig(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !write {
				_, err = fmt.Fprint(out, result.ConfigContent)
				return err
			}
			if len(result.FilesWritten) == 0 {
				_, err = fmt.Fprintln(out, MsgConfigExists)
				return err
			}
			for _, path := range result.FilesWritten {
				if _, err := fmt.Fprintf(out, MsgConfigWritten, path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&project, "project", false, MsgFlagProject)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
