package game

import "testing"

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile closed even with gap",
			input:    [4]int{2, 2, 0, 4},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "compaction across gaps",
			input:    [4]int{0, 2, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with gap at front",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no change needed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty line",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile slides",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "pair behind lone tile",
			input:    [4]int{4, 2, 2, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideLine(tt.input)
			if result != tt.expected {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] must become [8, 8, 0, 0], not [16, 0, 0, 0].
	row := [4]int{4, 4, 4, 4}
	result, score := slideLine(row)

	expected := [4]int{8, 8, 0, 0}
	if result != expected {
		t.Errorf("slideLine(%v) = %v, want %v (one merge per tile per move)", row, result, expected)
	}

	// Score should be 8+8 = 16, not 8+16 = 24.
	if score != 16 {
		t.Errorf("slideLine(%v) score = %d, want 16", row, score)
	}
}

func TestReverseLine(t *testing.T) {
	line := [4]int{2, 4, 0, 8}
	got := reverseLine(line)
	want := [4]int{8, 0, 4, 2}
	if got != want {
		t.Errorf("reverseLine(%v) = %v, want %v", line, got, want)
	}

	if reverseLine(got) != line {
		t.Error("reversing twice should restore the original line")
	}
}
