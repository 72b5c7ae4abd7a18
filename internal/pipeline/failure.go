// Package pipeline wraps every command so that provider errors, malformed
// input and JSON mode are handled the same way everywhere.
//
// A command body returns a *korapay.Response or an error. Wrap turns that
// into either a printable value or a *Failure; Printer renders the value.
// Every Failure ends the process with exit code 1.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
	"github.com/gray-adeyi/korapay-cli/pkg/settings"
)

// Kind classifies a Failure.
type Kind int

const (
	// KindConfig covers settings storage problems and missing credentials.
	KindConfig Kind = iota + 1
	// KindInput covers arguments that could not be parsed or validated.
	KindInput
	// KindProvider covers any error raised by the provider client.
	KindProvider
	// KindSerialization covers JSON mode responses whose data cannot be
	// serialized.
	KindSerialization
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInput:
		return "input"
	case KindProvider:
		return "provider"
	case KindSerialization:
		return "serialization"
	default:
		return "unknown"
	}
}

// Failure is a terminal, user-facing error for the current invocation.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Message != "" {
		return f.Message
	}
	if f.Err != nil {
		return f.Err.Error()
	}
	return f.Kind.String() + " failure"
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// ConfigError reports a settings or credential problem.
func ConfigError(err error) *Failure {
	return &Failure{Kind: KindConfig, Err: err}
}

// InputError reports an argument that could not be coerced or validated.
func InputError(err error) *Failure {
	return &Failure{Kind: KindInput, Err: err}
}

// ProviderError reports a failed call to Korapay.
func ProviderError(err error) *Failure {
	return &Failure{
		Kind:    KindProvider,
		Message: fmt.Sprintf("an error occurred while making a request to korapay: error: %v", err),
		Err:     err,
	}
}

// SerializationError reports response data that JSON mode could not
// serialize. The raw data and the provider's message are both included.
func SerializationError(data any, message string, err error) *Failure {
	return &Failure{
		Kind:    KindSerialization,
		Message: fmt.Sprintf("unable to decode data as json.\ngot: data: %v\nmessage: %s", data, message),
		Err:     err,
	}
}

// Classify maps an error from any layer onto a Failure. Errors that are
// already Failures are returned unchanged. Anything not raised by the
// provider client or the settings store, such as a *coerce.Error, is an
// input error.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var failure *Failure
	if errors.As(err, &failure) {
		return err
	}

	var (
		clientErr   *korapay.ClientError
		missingErr  *settings.MissingCredentialError
		settingsErr *settings.Error
	)
	switch {
	case errors.As(err, &clientErr):
		return ProviderError(err)
	case errors.As(err, &missingErr), errors.As(err, &settingsErr):
		return ConfigError(err)
	default:
		return InputError(err)
	}
}

// ExitCode returns the process exit status for err: 0 on success and 1 for
// every handled failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
