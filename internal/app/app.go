// Package app wires configuration, logging, the settings store and the
// Korapay client into the korapay command tree.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/gray-adeyi/korapay-cli/internal/commands"
	"github.com/gray-adeyi/korapay-cli/internal/dispatch"
	"github.com/gray-adeyi/korapay-cli/internal/pipeline"
	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
	"github.com/gray-adeyi/korapay-cli/pkg/output"
	"github.com/gray-adeyi/korapay-cli/pkg/progress"
	"github.com/gray-adeyi/korapay-cli/pkg/secrets"
	"github.com/gray-adeyi/korapay-cli/pkg/settings"
)

// Options configures an App. Zero values select the process's standard
// streams.
type Options struct {
	Version string
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
}

// App is the korapay command line application.
type App struct {
	root     *cobra.Command
	viper    *viper.Viper
	runtime  *dispatch.Runtime
	detector *secrets.Detector
	config   *Config
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
}

// New builds the command tree. Configuration is resolved when a command
// runs, so flags and environment variables are both honoured.
func New(opts Options) (*App, error) {
	detector, err := secrets.NewDetector(secrets.DefaultMasking(), secrets.DefaultValuePatterns())
	if err != nil {
		return nil, fmt.Errorf("failed to create secret detector: %w", err)
	}

	a := &App{
		viper:    newViper(),
		runtime:  &dispatch.Runtime{},
		detector: detector,
		in:       opts.In,
		out:      opts.Out,
		errOut:   opts.Err,
	}
	if a.in == nil {
		a.in = os.Stdin
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.errOut == nil {
		a.errOut = os.Stderr
	}

	a.root = &cobra.Command{
		Use:   "korapay",
		Short: "A command line utility for interacting with Korapay's API",
		Long: `A command line utility for interacting with Korapay's API.

Store your API keys once with "korapay config credentials", then call any
payment command. Every payment command accepts --json to print the response
data as JSON.`,
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	a.root.SetIn(a.in)
	a.root.SetOut(a.out)
	a.root.SetErr(a.errOut)
	a.root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return pipeline.InputError(err)
	})

	if err := addPersistentFlags(a.root.PersistentFlags(), a.viper); err != nil {
		return nil, err
	}

	if err := dispatch.Register(a.root, a.runtime, commands.Payments()...); err != nil {
		return nil, err
	}
	a.root.AddCommand(commands.NewConfigCommand(&commands.ConfigOptions{
		Runtime: a.runtime,
		In:      a.in,
		Out:     a.out,
		Prompt:  a.errOut,
	}))

	return a, nil
}

// Root returns the root command.
func (a *App) Root() *cobra.Command {
	return a.root
}

// Execute runs the command selected by args.
func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// MaskError renders err for display with every known secret masked.
func (a *App) MaskError(err error) string {
	return a.detector.MaskString(err.Error())
}

// setup resolves configuration and fills in the runtime. It runs before
// every command.
func (a *App) setup() error {
	cfg, err := loadConfig(a.viper)
	if err != nil {
		return pipeline.ConfigError(err)
	}
	a.config = cfg

	formatConfig := output.NewFormatConfig()
	if cfg.NoColor {
		pterm.DisableColor()
		formatConfig = formatConfig.WithColors(false)
	}

	level := pterm.LogLevelInfo
	if cfg.Debug {
		level = pterm.LogLevelDebug
	}
	logger := pterm.DefaultLogger.
		WithWriter(secrets.NewMaskingWriter(a.detector, a.errOut)).
		WithLevel(level)

	backend, err := settings.NewBackend(cfg.SettingsBackend, cfg.SettingsPath)
	if err != nil {
		return pipeline.ConfigError(err)
	}

	formats := output.NewManager()
	formats.SetConfig(formatConfig)
	if err := formats.SetDefaultFormat(cfg.Output); err != nil {
		return pipeline.ConfigError(err)
	}

	logger.Debug("configuration resolved", logger.Args(
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout.String(),
		"settings_backend", cfg.SettingsBackend,
		"settings_location", backend.Location(),
		"output", cfg.Output,
	))

	a.runtime.Settings = settings.NewService(backend)
	a.runtime.Printer = pipeline.NewPrinter(a.out, formats)
	a.runtime.Logger = logger
	a.runtime.Spinner = progress.NewSpinner(&progress.Config{
		Enabled: isTerminal(a.errOut) && !cfg.Debug,
		Writer:  a.errOut,
	})
	a.runtime.NewProvider = a.newProvider

	return nil
}

// newProvider creates the Korapay client for one invocation. The keys are
// registered with the detector first so they never reach the logs.
func (a *App) newProvider(creds settings.Credentials) (korapay.Provider, error) {
	a.detector.AddLiterals(creds.PublicKey, creds.SecretKey, creds.EncryptionKey)

	client, err := korapay.NewClient(&korapay.Config{
		PublicKey:     creds.PublicKey,
		SecretKey:     creds.SecretKey,
		EncryptionKey: creds.EncryptionKey,
		BaseURL:       a.config.BaseURL,
		Timeout:       a.config.Timeout,
		Logger:        a.runtime.Logger,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
