package scoring

import (
	"testing"
	"time"
)

func TestNumberRecall(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target string
		want   float64
	}{
		{"perfect", "38172", "38172", 100},
		{"empty input", "", "38172", 0},
		{"partial positional", "38999", "38172", 40},
		{"right digits wrong order", "27183", "38172", 0},
		{"non-digits filtered", " 3 8-1,7x2 ", "38172", 100},
		{"under-length", "381", "38172", 60},
		{"over-length extra ignored", "3817299", "38172", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumberRecall(tt.input, tt.target)
			if got != tt.want {
				t.Errorf("NumberRecall(%q, %q) = %v, want %v", tt.input, tt.target, got, tt.want)
			}
		})
	}
}

func TestWordRecall(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		remembered []string
		want       float64
	}{
		{"perfect ordered", "apple house", []string{"apple", "house"}, 100},
		{"order independent", "house apple", []string{"apple", "house"}, 100},
		{"case insensitive", "HOUSE Apple", []string{"apple", "house"}, 100},
		{"comma delimited", "house,apple", []string{"apple", "house"}, 100},
		{"repeated guess consumed once", "house apple house", []string{"apple", "house"}, 100},
		{"half recalled", "apple banana", []string{"apple", "house"}, 50},
		{"empty tokens ignored", "  ,, apple ,  ", []string{"apple", "house"}, 50},
		{"nothing", "", []string{"apple", "house"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordRecall(tt.input, tt.remembered)
			if got != tt.want {
				t.Errorf("WordRecall(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReactionTime(t *testing.T) {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	tests := []struct {
		name    string
		samples []time.Duration
		want    float64
	}{
		{"instant", []time.Duration{0, 0, 0}, 100},
		{"at ceiling", []time.Duration{ms(500)}, 0},
		{"beyond ceiling clamped", []time.Duration{ms(1000)}, 0},
		{"typical", []time.Duration{ms(250)}, 50},
		{"averaged", []time.Duration{ms(200), ms(300)}, 50},
		{"no samples", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReactionTime(tt.samples)
			if got != tt.want {
				t.Errorf("ReactionTime(%v) = %v, want %v", tt.samples, got, tt.want)
			}
		})
	}
}

func TestChoiceAccuracy(t *testing.T) {
	if got := ChoiceAccuracy(3, 5); got != 60 {
		t.Errorf("ChoiceAccuracy(3, 5) = %v, want 60", got)
	}
	if got := ChoiceAccuracy(0, 0); got != 0 {
		t.Errorf("ChoiceAccuracy(0, 0) = %v, want 0", got)
	}
}

func TestMemoryMatch(t *testing.T) {
	if got := MemoryMatchScore(4); got != 400 {
		t.Errorf("MemoryMatchScore(4) = %d, want 400", got)
	}
	if got := MemoryMatchAccuracy(2, 8); got != 50 {
		t.Errorf("MemoryMatchAccuracy(2, 8) = %v, want 50", got)
	}
	if got := MemoryMatchAccuracy(0, 0); got != 0 {
		t.Errorf("MemoryMatchAccuracy(0, 0) = %v, want 0", got)
	}
}

func TestQuickMath(t *testing.T) {
	if got := QuickMathDelta(true); got != 100 {
		t.Errorf("QuickMathDelta(true) = %d, want 100", got)
	}
	if got := QuickMathDelta(false); got != -50 {
		t.Errorf("QuickMathDelta(false) = %d, want -50", got)
	}
	if got := QuickMathAccuracy(7, 10); got != 70 {
		t.Errorf("QuickMathAccuracy(7, 10) = %v, want 70", got)
	}
}
