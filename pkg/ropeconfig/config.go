// Package ropeconfig loads rope.Limits from an optional TOML file, for a
// host application that wants to tune leaf size bounds rather than accept
// the package defaults (smaller leaves for a memory-constrained embedding,
// larger leaves for a huge document built once and rarely edited).
package ropeconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cordage/rope/pkg/rope"
)

// fileConfig mirrors the on-disk shape. Only leaf bounds are configurable;
// there is no editor, keymap, or UI configuration in scope here.
type fileConfig struct {
	Limits limitsConfig `toml:"limits"`
}

type limitsConfig struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// Load reads limits from filePath. A missing file is not an error: it
// yields rope.DefaultLimits(). A malformed file, or one whose limits fail
// rope's own validity rule, is reported as an error.
func Load(filePath string) (rope.Limits, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return rope.DefaultLimits(), nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(filePath, &fc); err != nil {
		return rope.Limits{}, fmt.Errorf("ropeconfig: decoding %s: %w", filePath, err)
	}

	limits := rope.DefaultLimits()
	if fc.Limits.Min != 0 {
		limits.Min = fc.Limits.Min
	}
	if fc.Limits.Max != 0 {
		limits.Max = fc.Limits.Max
	}

	if !limits.Valid() {
		return rope.Limits{}, fmt.Errorf("ropeconfig: %s: invalid limits (min %d, max %d)", filePath, limits.Min, limits.Max)
	}
	return limits, nil
}
