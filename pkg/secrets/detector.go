// Package secrets masks Korapay credentials in anything the CLI shows or
// logs: settings listings, debug logs and error messages.
package secrets

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"sort"
	"strings"
)

// ValuePattern is a named regular expression matching a secret value.
type ValuePattern struct {
	Name    string
	Pattern string
}

// DefaultValuePatterns match Korapay API keys and bearer tokens.
func DefaultValuePatterns() []ValuePattern {
	return []ValuePattern{
		{Name: "Korapay secret key", Pattern: `sk_(?:test|live)_[A-Za-z0-9]+`},
		{Name: "Korapay public key", Pattern: `pk_(?:test|live)_[A-Za-z0-9]+`},
		{Name: "Bearer token", Pattern: `Bearer\s+[A-Za-z0-9\-._~+/]+=*`},
	}
}

// Detector finds secrets in text, either by pattern or because they are
// one of the literal values it was told about.
type Detector struct {
	masking       *Masking
	valuePatterns []*compiledValuePattern
	literals      []string
}

type compiledValuePattern struct {
	name    string
	pattern *regexp.Regexp
}

// NewDetector compiles patterns. Literals are masked wherever they occur,
// which covers secrets with no recognisable shape such as the encryption
// key. Empty literals are ignored.
func NewDetector(masking *Masking, patterns []ValuePattern, literals ...string) (*Detector, error) {
	if masking == nil {
		masking = DefaultMasking()
	}

	d := &Detector{
		masking:       masking,
		valuePatterns: make([]*compiledValuePattern, 0, len(patterns)),
	}

	for _, vp := range patterns {
		regex, err := regexp.Compile(vp.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid value pattern %q: %w", vp.Pattern, err)
		}
		d.valuePatterns = append(d.valuePatterns, &compiledValuePattern{name: vp.Name, pattern: regex})
	}

	d.AddLiterals(literals...)
	return d, nil
}

// AddLiterals registers more values to mask, such as credentials loaded
// after the detector was created. Empty and already known values are
// ignored.
func (d *Detector) AddLiterals(literals ...string) {
	for _, literal := range literals {
		if literal != "" && !slices.Contains(d.literals, literal) {
			d.literals = append(d.literals, literal)
		}
	}
	// Longest first so a literal that contains another is replaced whole.
	sort.Slice(d.literals, func(i, j int) bool { return len(d.literals[i]) > len(d.literals[j]) })
}

// IsSecretValue reports whether value looks like a secret and which
// pattern matched.
func (d *Detector) IsSecretValue(value string) (bool, string) {
	for _, literal := range d.literals {
		if strings.Contains(value, literal) {
			return true, "configured credential"
		}
	}
	for _, vp := range d.valuePatterns {
		if vp.pattern.MatchString(value) {
			return true, vp.name
		}
	}
	return false, ""
}

// MaskString masks every secret found in text.
func (d *Detector) MaskString(text string) string {
	result := text

	for _, literal := range d.literals {
		result = strings.ReplaceAll(result, literal, MaskValue(literal, d.masking))
	}

	for _, vp := range d.valuePatterns {
		result = vp.pattern.ReplaceAllStringFunc(result, func(match string) string {
			return MaskValue(match, d.masking)
		})
	}

	return result
}

// MaskingWriter wraps an io.Writer and masks secrets before writing.
type MaskingWriter struct {
	detector *Detector
	delegate io.Writer
}

// NewMaskingWriter creates a new MaskingWriter that wraps an io.Writer.
func NewMaskingWriter(detector *Detector, delegate io.Writer) *MaskingWriter {
	return &MaskingWriter{
		detector: detector,
		delegate: delegate,
	}
}

// Write implements io.Writer, masking secrets before writing to the
// delegate. Each call is masked independently, so a secret split across two
// writes is not caught; the pterm logger writes one line per call.
func (w *MaskingWriter) Write(p []byte) (n int, err error) {
	masked := w.detector.MaskString(string(p))

	if _, err := io.WriteString(w.delegate, masked); err != nil {
		return 0, err
	}

	// Report the original length to honour the io.Writer contract.
	return len(p), nil
}
