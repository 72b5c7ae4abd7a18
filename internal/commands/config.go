package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gray-adeyi/korapay-cli/internal/dispatch"
	"github.com/gray-adeyi/korapay-cli/internal/pipeline"
	"github.com/gray-adeyi/korapay-cli/pkg/secrets"
	"github.com/gray-adeyi/korapay-cli/pkg/settings"
)

// ConfigOptions configures the config command group.
type ConfigOptions struct {
	// Runtime supplies the settings service once the root command has
	// resolved its configuration.
	Runtime *dispatch.Runtime
	// In is read for credentials. When it is a terminal the input is not
	// echoed; otherwise one line is read per credential.
	In io.Reader
	// Out receives command output. Prompts go to Prompt.
	Out    io.Writer
	Prompt io.Writer
}

// credentialPrompts lists the credentials config credentials asks for, in
// order.
var credentialPrompts = []struct {
	name  string
	label string
}{
	{settings.PublicKey, "Public key"},
	{settings.SecretKey, "Secret key"},
	{settings.EncryptionKey, "Encryption key"},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand(opts *ConfigOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored credentials",
		Long: `Manage the credentials used to authenticate with Korapay.

Available subcommands:
  credentials  - Store your public, secret and encryption keys
  reset        - Remove every stored setting
  show         - Display stored settings with secrets masked
  path         - Show where settings are stored`,
	}

	cmd.AddCommand(newConfigCredentialsCommand(opts))
	cmd.AddCommand(newConfigResetCommand(opts))
	cmd.AddCommand(newConfigShowCommand(opts))
	cmd.AddCommand(newConfigPathCommand(opts))

	return cmd
}

func newConfigCredentialsCommand(opts *ConfigOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "credentials",
		Short: "Store your Korapay API keys",
		Long: `Prompt for your public, secret and encryption keys and store them.

Input is hidden when read from a terminal. When stdin is not a terminal, one
key is read per line, in the order public, secret, encryption.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := newSecretReader(opts.In, opts.Prompt)

			values := make(settings.Record, len(credentialPrompts))
			for _, p := range credentialPrompts {
				value, err := reader.read(p.label)
				if err != nil {
					return pipeline.InputError(fmt.Errorf("failed to read %s: %w", p.name, err))
				}
				if value == "" {
					return pipeline.InputError(fmt.Errorf("%s cannot be empty", p.name))
				}
				values[p.name] = value
			}

			if err := opts.Runtime.Settings.SetAll(cmd.Context(), values); err != nil {
				return pipeline.ConfigError(err)
			}

			pterm.Success.WithWriter(opts.Out).Println("Credentials saved")
			return nil
		},
	}
}

func newConfigResetCommand(opts *ConfigOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove every stored setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Runtime.Settings.ResetAll(cmd.Context()); err != nil {
				return pipeline.ConfigError(err)
			}

			pterm.Success.WithWriter(opts.Out).Println("Settings reset")
			return nil
		},
	}
}

func newConfigShowCommand(opts *ConfigOptions) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display stored settings with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains([]string{secrets.StylePartial, secrets.StyleFull, secrets.StyleHash}, style) {
				return pipeline.InputError(fmt.Errorf("invalid mask style %q: expected partial, full or hash", style))
			}

			record, err := opts.Runtime.Settings.LoadOrInit(cmd.Context())
			if err != nil {
				return pipeline.ConfigError(err)
			}

			masking := secrets.DefaultMasking()
			masking.Style = style
			strategy := secrets.CreateMaskStrategy(masking)

			view := make(map[string]string, len(record)+len(credentialPrompts))
			for _, p := range credentialPrompts {
				view[p.name] = "(not set)"
			}
			for name, value := range record {
				if value == "" {
					continue
				}
				view[name] = strategy.Mask(value)
			}

			opts.Runtime.Printer.Print(view)
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "mask-style", secrets.StylePartial, "How to mask values: partial, full or hash")
	return cmd
}

func newConfigPathCommand(opts *ConfigOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show where settings are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(opts.Out, opts.Runtime.Settings.Backend().Location())
			return nil
		},
	}
}

// secretReader reads one credential at a time, hiding input on a terminal.
type secretReader struct {
	in     io.Reader
	prompt io.Writer
	lines  *bufio.Reader
}

func newSecretReader(in io.Reader, prompt io.Writer) *secretReader {
	if in == nil {
		in = os.Stdin
	}
	if prompt == nil {
		prompt = io.Discard
	}
	return &secretReader{in: in, prompt: prompt}
}

func (r *secretReader) read(label string) (string, error) {
	if f, ok := r.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(r.prompt, "%s: ", label)
		value, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(r.prompt)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(value)), nil
	}

	if r.lines == nil {
		r.lines = bufio.NewReader(r.in)
	}
	line, err := r.lines.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.New("unexpected end of input")
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
