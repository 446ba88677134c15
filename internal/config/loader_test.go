package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Rules.WinTarget != 2048 {
		t.Errorf("default win_target = %d, want 2048", cfg.Rules.WinTarget)
	}
	if cfg.Rules.FourProb != 0.10 {
		t.Errorf("default four_prob = %v, want 0.10", cfg.Rules.FourProb)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := "rules:\n  win_target: 512\n  four_prob: 0.25\n  keep_playing: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Rules.WinTarget != 512 {
		t.Errorf("win_target = %d, want 512", cfg.Rules.WinTarget)
	}
	if cfg.Rules.FourProb != 0.25 {
		t.Errorf("four_prob = %v, want 0.25", cfg.Rules.FourProb)
	}
	if cfg.Rules.KeepPlaying {
		t.Error("keep_playing should be false")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("explicit missing config path should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rules   RulesConfig
		wantErr bool
	}{
		{"classic", RulesConfig{WinTarget: 2048, FourProb: 0.10}, false},
		{"small target", RulesConfig{WinTarget: 8, FourProb: 0}, false},
		{"non power of two", RulesConfig{WinTarget: 1000, FourProb: 0.10}, true},
		{"target too small", RulesConfig{WinTarget: 4, FourProb: 0.10}, true},
		{"probability above one", RulesConfig{WinTarget: 2048, FourProb: 1.5}, true},
		{"negative probability", RulesConfig{WinTarget: 2048, FourProb: -0.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GameConfig{Rules: tt.rules}.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
