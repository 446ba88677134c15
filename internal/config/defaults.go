package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the classic rules.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Rules: RulesConfig{
			WinTarget:   2048,
			FourProb:    0.10,
			KeepPlaying: true,
		},
	}
}
