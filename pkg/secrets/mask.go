package secrets

import (
	"crypto/sha256"
	"encoding/hex"
)

// Masking styles.
const (
	StylePartial = "partial"
	StyleFull    = "full"
	StyleHash    = "hash"
)

// Masking configures how a secret value is rendered.
type Masking struct {
	// Style is one of partial, full or hash.
	Style string

	// ShowChars is the number of leading characters partial masking keeps.
	ShowChars int

	// Replacement stands in for the hidden part. Defaults to "***".
	Replacement string
}

// DefaultMasking keeps the key prefix (sk_test_, pk_live_, ...) visible so
// the mode of a configured key is recognisable without revealing it.
func DefaultMasking() *Masking {
	return &Masking{Style: StylePartial, ShowChars: 8, Replacement: "***"}
}

// MaskValue masks a sensitive value using the configured style. A nil
// config uses DefaultMasking.
func MaskValue(value string, config *Masking) string {
	if config == nil {
		config = DefaultMasking()
	}

	switch config.Style {
	case StyleFull:
		return fullMask(config.Replacement)
	case StyleHash:
		return hashMask(value)
	default:
		return partialMask(value, config.ShowChars, config.Replacement)
	}
}

// fullMask completely masks the value.
func fullMask(replacement string) string {
	if replacement == "" {
		return "***"
	}
	return replacement
}

// partialMask shows the first N characters and masks the rest.
func partialMask(value string, showChars int, replacement string) string {
	if replacement == "" {
		replacement = "***"
	}

	// Too short to reveal anything safely.
	if len(value) <= showChars*2 {
		return replacement
	}

	return value[:showChars] + replacement
}

// hashMask creates a short SHA256 fingerprint of the value, useful for
// telling two keys apart without showing either.
func hashMask(value string) string {
	hash := sha256.Sum256([]byte(value))
	return "sha256:" + hex.EncodeToString(hash[:])[:16]
}

// MaskStrategy masks values.
type MaskStrategy interface {
	Mask(value string) string
	Name() string
}

type styleStrategy struct {
	config *Masking
}

func (s styleStrategy) Mask(value string) string { return MaskValue(value, s.config) }

func (s styleStrategy) Name() string { return s.config.Style }

// CreateMaskStrategy creates a MaskStrategy from configuration. Unknown
// styles fall back to partial.
func CreateMaskStrategy(config *Masking) MaskStrategy {
	if config == nil {
		config = DefaultMasking()
	}
	cfg := *config
	switch cfg.Style {
	case StyleFull, StyleHash:
	default:
		cfg.Style = StylePartial
	}
	return styleStrategy{config: &cfg}
}
