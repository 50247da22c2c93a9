package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the defaults with every value commented
// out, as a starting point for a user or project config file
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultConfigContent())
}

// commentOutConfigValues comments out assignment lines, keeping blank lines,
// comments and section headers as they are
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// effectiveConfig mirrors Config with TOML tags and a readable timeout
type effectiveConfig struct {
	DefaultFiletypes bool                      `toml:"default_filetypes"`
	Ranker           effectiveRanker           `toml:"ranker"`
	Corpus           CorpusConfig              `toml:"corpus"`
	Filetypes        map[string]FiletypeConfig `toml:"filetypes"`
}

type effectiveRanker struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Timeout string   `toml:"timeout"`
}

// MarshalEffective renders a loaded configuration back to TOML
func MarshalEffective(cfg *Config) ([]byte, error) {
	args := cfg.Ranker.Args
	if args == nil {
		args = []string{}
	}
	doc := effectiveConfig{
		DefaultFiletypes: cfg.DefaultFiletypes,
		Ranker: effectiveRanker{
			Command: cfg.Ranker.Command,
			Args:    args,
			Timeout: cfg.Ranker.Timeout.String(),
		},
		Corpus:    cfg.Corpus,
		Filetypes: cfg.Filetypes,
	}
	return toml.Marshal(doc)
}
