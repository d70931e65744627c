// Package seed provides seed selection for palette generation, so a palette
// can be reproduced exactly or varied on every run.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

// Mode determines how the palette random seed is chosen.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run, default).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeText derives the seed from a phrase (same phrase, same palette).
	ModeText Mode = "text"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
	Text  string // Seed phrase (only used when Mode is ModeText)
}

// Calculate determines the seed value based on the seed mode.
func Calculate(config Config) (int64, error) {
	switch config.Mode {
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeText:
		if strings.TrimSpace(config.Text) == "" {
			return 0, fmt.Errorf("seed text is required for text seed mode")
		}
		return CalculateTextSeed(config.Text), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateTextSeed hashes text into a deterministic seed.
func CalculateTextSeed(text string) int64 {
	hash := sha256.Sum256([]byte(text))
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() ^ rand.Int64()
}

// NewRand returns a PCG random source for seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed) // #nosec G115 -- bit reinterpretation is intended
	// #nosec G404 -- palette colours are not security sensitive
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual, ModeText}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual, text)", s)
}
