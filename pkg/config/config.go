package config

import "time"

// Config is the decoded and validated fzf-alt configuration
type Config struct {
	DefaultFiletypes bool                      `koanf:"default_filetypes"`
	Ranker           RankerConfig              `koanf:"ranker"`
	Corpus           CorpusConfig              `koanf:"corpus"`
	Filetypes        map[string]FiletypeConfig `koanf:"filetypes"`

	// Sources lists the files that contributed, in load order
	Sources []string `koanf:"-"`
}

// RankerConfig configures the external fuzzy matcher
type RankerConfig struct {
	Command string        `koanf:"command" validate:"required"`
	Args    []string      `koanf:"args"`
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`
}

// CorpusConfig configures where candidate files come from
type CorpusConfig struct {
	Command string `koanf:"command" toml:"command"`
}

// FiletypeConfig is the raw rule pair for one filetype. Both fields are
// regular expressions; package rules compiles them.
type FiletypeConfig struct {
	IsTest string `koanf:"is_test" toml:"is_test" validate:"required"`
	Strip  string `koanf:"strip" toml:"strip" validate:"required"`
}
