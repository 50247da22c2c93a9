package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/fzf-alt/pkg/config"
	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/logging"
	"github.com/arthur-debert/fzf-alt/pkg/paths"
)

// Target selects which file Write creates
type Target int

const (
	// TargetUser is $XDG_CONFIG_HOME/fzf-alt/config.toml
	TargetUser Target = iota
	// TargetProject is .fzf-alt.toml at the project root
	TargetProject
)

// Options holds options for the gen-config command
type Options struct {
	ProjectRoot string
	ConfigFile  string

	// Effective renders the loaded configuration instead of the
	// commented-out defaults
	Effective bool
	Write     bool
	Target    Target
}

// Result is the generated content and the files written, if any
type Result struct {
	ConfigContent string   `json:"content"`
	FilesWritten  []string `json:"filesWritten"`
}

// GenConfig outputs or writes a configuration file
func GenConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	p, err := paths.New(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	content := config.GenerateConfigContent()
	if opts.Effective {
		cfg, err := config.Load(config.LoadOptions{Paths: p, ConfigFile: opts.ConfigFile})
		if err != nil {
			return nil, err
		}
		data, err := config.MarshalEffective(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
		}
		content = string(data)
	}

	result := &Result{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	targetPath := p.UserConfigPath()
	if opts.Target == TargetProject {
		targetPath = filepath.Join(p.ProjectRoot(), paths.ProjectConfigFile)
	}

	if _, err := os.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	dir := filepath.Dir(targetPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}
	if err := os.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath).
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
