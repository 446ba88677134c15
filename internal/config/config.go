// Package config provides YAML-based rules configuration for the game.
package config

import (
	"fmt"
	"math/bits"
)

// GameConfig contains all tunable rules for a game session.
type GameConfig struct {
	Rules RulesConfig `yaml:"rules"`
}

// RulesConfig defines the classic-2048 parameters that sessions honor.
type RulesConfig struct {
	// WinTarget is the tile value that counts as a win. Must be a power
	// of two, at least 8.
	WinTarget int `yaml:"win_target"`

	// FourProb is the probability of spawning a 4 instead of a 2.
	FourProb float64 `yaml:"four_prob"`

	// KeepPlaying controls whether the TUI offers to continue after the
	// win target is reached.
	KeepPlaying bool `yaml:"keep_playing"`
}

// Validate checks the loaded values and fails fast on nonsense rather
// than clamping.
func (c GameConfig) Validate() error {
	r := c.Rules
	if r.WinTarget < 8 || bits.OnesCount(uint(r.WinTarget)) != 1 {
		return fmt.Errorf("config: win_target %d must be a power of two >= 8", r.WinTarget)
	}
	if r.FourProb < 0 || r.FourProb > 1 {
		return fmt.Errorf("config: four_prob %v outside [0,1]", r.FourProb)
	}
	return nil
}
