package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
	"github.com/gray-adeyi/korapay-cli/pkg/output"
)

// Handler is a command body: it calls the provider and returns its response.
type Handler func(ctx context.Context) (*korapay.Response, error)

// Wrap runs handler and decides what the command outputs.
//
// A provider error becomes a ProviderError and nothing is returned for
// printing. In JSON mode the response's data is emitted as a compact JSON
// string, keeping the provider's key order when the raw payload is known;
// a missing response or data, or data that cannot be serialized, is a
// SerializationError. Otherwise the response itself is
// returned for human rendering.
func Wrap(ctx context.Context, jsonMode bool, handler Handler) (any, error) {
	resp, err := handler(ctx)
	if err != nil {
		var clientErr *korapay.ClientError
		if errors.As(err, &clientErr) {
			return nil, ProviderError(err)
		}
		return nil, Classify(err)
	}

	if !jsonMode {
		return resp, nil
	}

	if resp == nil {
		return nil, SerializationError(nil, "", errors.New("no response"))
	}
	if resp.Data == nil {
		return nil, SerializationError(resp.Data, resp.Message, errors.New("response has no data"))
	}

	out, err := compactData(resp)
	if err != nil {
		return nil, SerializationError(resp.Data, resp.Message, err)
	}

	return string(out), nil
}

func compactData(resp *korapay.Response) ([]byte, error) {
	if len(resp.RawData) == 0 {
		return output.MarshalJSON(resp.Data)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, resp.RawData); err != nil {
		return nil, fmt.Errorf("failed to compact JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Execute runs handler through Wrap and prints the result. Nothing is
// printed when Wrap fails.
func Execute(ctx context.Context, jsonMode bool, printer *Printer, handler Handler) error {
	result, err := Wrap(ctx, jsonMode, handler)
	if err != nil {
		return err
	}

	printer.Print(result)
	return nil
}

// Printer is the outer, unconditional output stage.
type Printer struct {
	out     io.Writer
	formats *output.Manager
}

// NewPrinter creates a printer writing to out. A nil manager uses the
// default yaml rendering.
func NewPrinter(out io.Writer, formats *output.Manager) *Printer {
	if formats == nil {
		formats = output.NewManager()
	}
	return &Printer{out: out, formats: formats}
}

// responseView fixes the field order of a rendered response.
type responseView struct {
	Status  bool   `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
	Data    any    `json:"data" yaml:"data"`
}

// Print writes v. Strings (JSON mode output) are written verbatim followed
// by a newline. Responses are rendered with the configured human format.
// Print has no failure path: if a formatter cannot handle a value it falls
// back to yaml, then to Go's default formatting.
func (p *Printer) Print(v any) {
	switch value := v.(type) {
	case string:
		_, _ = fmt.Fprintln(p.out, value)
	case *korapay.Response:
		if value == nil {
			p.render(nil)
			return
		}
		p.printResponse(value)
	default:
		p.render(value)
	}
}

func (p *Printer) printResponse(resp *korapay.Response) {
	if p.formats.DefaultFormat() == "table" {
		_, _ = fmt.Fprintln(p.out, resp.Message)
		if err := p.formats.Format(p.out, resp.Data, "table"); err == nil {
			return
		}
		p.renderWith("yaml", resp.Data)
		return
	}

	p.render(responseView{Status: resp.Status, Message: resp.Message, Data: output.Normalize(resp.Data)})
}

func (p *Printer) render(v any) {
	if err := p.formats.Format(p.out, v, ""); err == nil {
		return
	}
	p.renderWith("yaml", v)
}

func (p *Printer) renderWith(format string, v any) {
	if err := p.formats.Format(p.out, v, format); err != nil {
		_, _ = fmt.Fprintf(p.out, "%+v\n", v)
	}
}
