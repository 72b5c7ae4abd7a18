// Package dispatch turns declarative command definitions into cobra
// commands and runs them through the execution pipeline.
//
// Every registered command gets a --json flag. At run time a command
// parses its primitive arguments, requires stored credentials, decodes its
// structured arguments and only then calls the provider.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gray-adeyi/korapay-cli/internal/pipeline"
	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
	"github.com/gray-adeyi/korapay-cli/pkg/progress"
	"github.com/gray-adeyi/korapay-cli/pkg/settings"
)

// JSONFlag is the output-mode flag injected into every command.
const JSONFlag = "json"

// Call performs the provider request for one invocation.
type Call func(ctx context.Context, provider korapay.Provider) (*korapay.Response, error)

// Command declares one payment operation.
type Command struct {
	Name  string
	Short string
	Long  string
	// Args are required positional arguments, in order.
	Args []Param
	// Flags are optional.
	Flags []Param
	// Bind validates and decodes the invocation's input and returns the
	// provider call. It must not contact the provider.
	Bind func(in *Input) (Call, error)
}

// Runtime carries the collaborators commands need. The application fills
// it in before any command runs.
type Runtime struct {
	Settings    *settings.Service
	NewProvider func(settings.Credentials) (korapay.Provider, error)
	Printer     *pipeline.Printer
	Spinner     *progress.Spinner
	Logger      *pterm.Logger
}

// Register adds cmds to parent.
func Register(parent *cobra.Command, rt *Runtime, cmds ...Command) error {
	for _, c := range cmds {
		cmd, err := c.build(rt)
		if err != nil {
			return fmt.Errorf("failed to build command %s: %w", c.Name, err)
		}
		parent.AddCommand(cmd)
	}
	return nil
}

func (c Command) build(rt *Runtime) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   c.use(),
		Short: c.Short,
		Long:  c.long(),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(len(c.Args))(cmd, args); err != nil {
				return pipeline.InputError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, rt, args)
		},
	}

	if err := addFlags(cmd, c.Flags); err != nil {
		return nil, err
	}
	cmd.Flags().Bool(JSONFlag, false, "Print the response data as JSON")

	return cmd, nil
}

func (c Command) use() string {
	parts := []string{c.Name}
	for _, arg := range c.Args {
		parts = append(parts, "<"+arg.Name+">")
	}
	return strings.Join(parts, " ")
}

// long appends an argument reference to the command's description.
func (c Command) long() string {
	text := c.Long
	if text == "" {
		text = c.Short
	}
	if len(c.Args) == 0 {
		return text
	}

	width := 0
	for _, arg := range c.Args {
		width = max(width, len(arg.Name))
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\nArguments:\n")
	for _, arg := range c.Args {
		fmt.Fprintf(&b, "  %-*s  %-6s  %s\n", width, arg.Name, arg.Type, arg.describe())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c Command) run(cmd *cobra.Command, rt *Runtime, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	jsonMode, err := cmd.Flags().GetBool(JSONFlag)
	if err != nil {
		return pipeline.InputError(err)
	}

	in, err := c.parse(cmd, args)
	if err != nil {
		return pipeline.InputError(err)
	}

	creds, err := rt.Settings.Credentials(ctx)
	if err != nil {
		return pipeline.ConfigError(err)
	}

	call, err := c.bind(in)
	if err != nil {
		return pipeline.Classify(err)
	}

	provider, err := rt.NewProvider(creds)
	if err != nil {
		return pipeline.ConfigError(err)
	}

	if rt.Logger != nil {
		rt.Logger.Debug("running command", rt.Logger.Args("command", c.Name, "json", jsonMode))
	}

	return pipeline.Execute(ctx, jsonMode, rt.Printer, func(ctx context.Context) (*korapay.Response, error) {
		var resp *korapay.Response
		err := rt.spinner().Run("Contacting Korapay...", func() error {
			var callErr error
			resp, callErr = call(ctx, provider)
			return callErr
		})
		return resp, err
	})
}

// parse converts positional arguments and changed flags into an Input.
func (c Command) parse(cmd *cobra.Command, args []string) (*Input, error) {
	if err := validateEnumFlags(cmd); err != nil {
		return nil, err
	}

	values := make(map[string]any, len(c.Args)+len(c.Flags))

	for i, arg := range c.Args {
		v, err := parseArg(arg, args[i])
		if err != nil {
			return nil, err
		}
		values[arg.Name] = v
	}

	for _, flag := range c.Flags {
		name := flagName(flag.Name)
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := flagValue(cmd.Flags(), name)
		if err != nil {
			return nil, err
		}
		// An empty structured flag is treated as not given.
		if s, ok := v.(string); ok && flag.JSON && strings.TrimSpace(s) == "" {
			continue
		}
		values[flag.Name] = v
	}

	return NewInput(values), nil
}

func (c Command) bind(in *Input) (Call, error) {
	if c.Bind == nil {
		return nil, fmt.Errorf("command %s has no handler", c.Name)
	}
	return c.Bind(in)
}

func (rt *Runtime) spinner() *progress.Spinner {
	if rt.Spinner == nil {
		return progress.NewSpinner(&progress.Config{Enabled: false})
	}
	return rt.Spinner
}
