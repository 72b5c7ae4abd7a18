package app

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
	"github.com/gray-adeyi/korapay-cli/pkg/settings"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "KORAPAY"

// Configuration keys.
const (
	KeyBaseURL         = "base_url"
	KeyTimeout         = "timeout"
	KeySettingsBackend = "settings_backend"
	KeySettingsPath    = "settings_path"
	KeyOutput          = "output"
	KeyNoColor         = "no_color"
	KeyDebug           = "debug"
)

// Config is the resolved runtime configuration.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	SettingsBackend string
	SettingsPath    string
	Output          string
	NoColor         bool
	Debug           bool
}

// humanFormats are the output formats selectable for human rendering.
// JSON output is requested per command with --json.
var humanFormats = []string{"yaml", "table"}

// newViper creates a viper instance with defaults and environment binding.
// Flags bound later take priority over the environment.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBaseURL, korapay.DefaultBaseURL)
	v.SetDefault(KeyTimeout, "30s")
	v.SetDefault(KeySettingsBackend, settings.BackendFile)
	v.SetDefault(KeySettingsPath, "")
	v.SetDefault(KeyOutput, "yaml")
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyDebug, false)

	return v
}

// addPersistentFlags registers the global flags and binds them to v.
func addPersistentFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	flags.String("base-url", korapay.DefaultBaseURL, "Korapay API base URL")
	flags.String("timeout", "30s", "HTTP request timeout")
	flags.String("settings-backend", settings.BackendFile, "Where credentials are stored: file, keyring or memory")
	flags.String("settings-path", "", "Settings file path (file backend only)")
	flags.StringP("output", "o", "yaml", "Human output format: yaml or table")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("debug", false, "Enable debug logging")

	bindings := map[string]string{
		KeyBaseURL:         "base-url",
		KeyTimeout:         "timeout",
		KeySettingsBackend: "settings-backend",
		KeySettingsPath:    "settings-path",
		KeyOutput:          "output",
		KeyNoColor:         "no-color",
		KeyDebug:           "debug",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return nil
}

// loadConfig resolves and validates the configuration held by v.
func loadConfig(v *viper.Viper) (*Config, error) {
	timeout, err := time.ParseDuration(v.GetString(KeyTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", KeyTimeout, v.GetString(KeyTimeout), err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid %s %q: must be positive", KeyTimeout, v.GetString(KeyTimeout))
	}

	cfg := &Config{
		BaseURL:         strings.TrimSpace(v.GetString(KeyBaseURL)),
		Timeout:         timeout,
		SettingsBackend: v.GetString(KeySettingsBackend),
		SettingsPath:    v.GetString(KeySettingsPath),
		Output:          v.GetString(KeyOutput),
		NoColor:         v.GetBool(KeyNoColor),
		Debug:           v.GetBool(KeyDebug),
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%s cannot be empty", KeyBaseURL)
	}
	if !slices.Contains(humanFormats, cfg.Output) {
		return nil, fmt.Errorf("invalid %s %q: expected one of: %s", KeyOutput, cfg.Output, strings.Join(humanFormats, ", "))
	}

	return cfg, nil
}
