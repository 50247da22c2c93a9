package config

import (
	stderrors "errors"
	"os"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/logging"
	"github.com/arthur-debert/fzf-alt/pkg/paths"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "FZF_ALT_"

// LoadOptions selects the configuration sources
type LoadOptions struct {
	// Paths locates the user and project config files. May be nil when
	// ConfigFile is set.
	Paths paths.Paths

	// ConfigFile, when set, replaces the user and project files
	ConfigFile string

	// Overrides are dotted keys (e.g. "ranker.command") applied last, on
	// top of the environment. Command line flags end up here.
	Overrides map[string]interface{}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their config key rather than the Go name
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Load builds the configuration from all layers, decodes and validates it
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	defaults := koanf.New(".")
	if err := defaults.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	overrides := koanf.New(".")
	var sources []string
	for _, path := range configFiles(opts) {
		if err := overrides.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
		sources = append(sources, path)
	}

	err := overrides.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	if len(opts.Overrides) > 0 {
		if err := overrides.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	k := koanf.New(".")
	if err := k.Merge(defaults); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to merge defaults")
	}
	if overrides.Exists("default_filetypes") && !overrides.Bool("default_filetypes") {
		logger.Debug().Msg("Dropping default filetypes")
		k.Delete("filetypes")
	}
	if err := k.Merge(overrides); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to merge configuration")
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", sources).
		Int("filetypes", len(cfg.Filetypes)).
		Str("ranker", cfg.Ranker.Command).
		Msg("Configuration loaded")

	return cfg, nil
}

// configFiles returns the files to layer over the defaults, in order
func configFiles(opts LoadOptions) []string {
	if opts.ConfigFile != "" {
		// An explicit file must exist; let the provider report it
		return []string{opts.ConfigFile}
	}
	if opts.Paths == nil {
		return nil
	}

	var files []string
	if path := opts.Paths.UserConfigPath(); fileExists(path) {
		files = append(files, path)
	}
	if path := opts.Paths.ProjectConfigPath(); path != "" {
		files = append(files, path)
	}
	return files
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// envKey maps FZF_ALT_RANKER_TIMEOUT to ranker.timeout. Only the ranker and
// corpus sections are settable from the environment; anything else (the
// path variables, filetypes) is skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok || field == "" {
		return ""
	}
	switch section {
	case "ranker", "corpus":
		return section + "." + field
	}
	return ""
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

// Validate checks the decoded configuration. Each filetype is checked on its
// own so the error can name it.
func Validate(cfg *Config) error {
	v := getValidator()

	if err := v.Struct(cfg.Ranker); err != nil {
		return fieldError(err, "ranker", errors.ErrConfigInvalid)
	}

	if len(cfg.Filetypes) == 0 {
		return errors.New(errors.ErrConfigNoFiletypes, "no filetype rules configured")
	}

	names := make([]string, 0, len(cfg.Filetypes))
	for name := range cfg.Filetypes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.ErrConfigInvalid, "filetype name must not be empty")
		}
		if err := v.Struct(cfg.Filetypes[name]); err != nil {
			return fieldError(err, name, errors.ErrConfigMissingField).WithDetail("filetype", name)
		}
	}

	return nil
}

// fieldError converts the first validator failure into a coded error
func fieldError(err error, scope string, code errors.ErrorCode) *errors.AltError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrapf(err, errors.ErrConfigInvalid, "invalid %s configuration", scope)
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return errors.Newf(code, "%s: required field %q is missing", scope, fe.Field()).
			WithDetail("field", fe.Field())
	}
	return errors.Newf(errors.ErrConfigInvalid, "%s: field %q fails %q", scope, fe.Field(), fe.Tag()).
		WithDetail("field", fe.Field())
}
