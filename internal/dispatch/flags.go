package dispatch

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ParamType is the primitive type of a positional argument or flag.
// Structured values are declared as TypeString and decoded in Bind.
type ParamType int

const (
	TypeString ParamType = iota
	TypeNumber
	TypeBool
	TypeEnum
)

func (t ParamType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	case TypeEnum:
		return "enum"
	default:
		return "string"
	}
}

// Param declares one positional argument or flag.
type Param struct {
	// Name is the snake_case parameter name. Flags are registered under its
	// kebab-case form; error messages use Name as is.
	Name  string
	Usage string
	Type  ParamType
	// Values lists the legal values of a TypeEnum.
	Values []string
	// JSON marks a TypeString that carries a JSON document, for help output.
	JSON bool
}

// flagName converts a parameter name into its flag form.
func flagName(name string) string {
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, " ", "-")
	return strings.ToLower(name)
}

func (p Param) describe() string {
	usage := p.Usage
	switch {
	case p.Type == TypeEnum:
		usage += fmt.Sprintf(" (one of: %s)", strings.Join(p.Values, ", "))
	case p.JSON:
		usage += " (JSON)"
	}
	return strings.TrimSpace(usage)
}

// addFlags registers optional parameters on cmd. Enum flags carry their
// legal values in an "enum" annotation checked by validateEnumFlags.
func addFlags(cmd *cobra.Command, params []Param) error {
	for _, p := range params {
		name := flagName(p.Name)

		switch p.Type {
		case TypeNumber:
			cmd.Flags().Float64(name, 0, p.describe())
		case TypeBool:
			cmd.Flags().Bool(name, false, p.describe())
		case TypeEnum:
			cmd.Flags().String(name, "", p.describe())
			if err := cmd.Flags().SetAnnotation(name, "enum", p.Values); err != nil {
				return fmt.Errorf("failed to annotate flag %s: %w", name, err)
			}
		default:
			cmd.Flags().String(name, "", p.describe())
		}
	}

	return nil
}

// validateEnumFlags checks every changed enum flag against its allowed values.
func validateEnumFlags(cmd *cobra.Command) error {
	var problems []string

	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if !flag.Changed || flag.Annotations == nil {
			return
		}

		enumValues, ok := flag.Annotations["enum"]
		if !ok {
			return
		}

		value := flag.Value.String()
		if !slices.Contains(enumValues, value) {
			problems = append(problems, fmt.Sprintf("flag --%s: value '%s' not in allowed values: %s",
				flag.Name, value, strings.Join(enumValues, ", ")))
		}
	})

	if len(problems) > 0 {
		return fmt.Errorf("invalid flag values:\n  %s", strings.Join(problems, "\n  "))
	}

	return nil
}

// parseArg converts one positional argument according to its declaration.
func parseArg(p Param, raw string) (any, error) {
	switch p.Type {
	case TypeNumber:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || !finite(v) {
			return nil, fmt.Errorf("invalid value %q for argument `%s`: expected a number", raw, p.Name)
		}
		return v, nil
	case TypeBool:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for argument `%s`: expected true or false", raw, p.Name)
		}
		return v, nil
	case TypeEnum:
		if !slices.Contains(p.Values, raw) {
			return nil, fmt.Errorf("invalid value %q for argument `%s`: expected one of: %s",
				raw, p.Name, strings.Join(p.Values, ", "))
		}
		return raw, nil
	default:
		return raw, nil
	}
}

// flagValue retrieves a flag value with type conversion.
func flagValue(flags *pflag.FlagSet, name string) (any, error) {
	flag := flags.Lookup(name)
	if flag == nil {
		return nil, fmt.Errorf("flag %s not found", name)
	}

	switch flag.Value.Type() {
	case "float64":
		v, err := flags.GetFloat64(name)
		if err != nil {
			return nil, err
		}
		if !finite(v) {
			return nil, fmt.Errorf("invalid value %q for flag --%s: expected a number", flag.Value.String(), name)
		}
		return v, nil
	case "bool":
		return flags.GetBool(name)
	default:
		return flags.GetString(name)
	}
}

// finite rejects NaN and the infinities, which strconv accepts but JSON
// cannot carry.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
