package t2048

import "testing"

func TestMergeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
		changed  bool
	}{
		{"simple merge", Line{2, 2, 0, 0}, Line{4, 0, 0, 0}, true},
		{"three equal merge once", Line{2, 2, 2, 0}, Line{4, 2, 0, 0}, true},
		{"two pairs", Line{2, 2, 4, 4}, Line{4, 8, 0, 0}, true},
		{"four equal", Line{4, 4, 4, 4}, Line{8, 8, 0, 0}, true},
		{"merged tile not remerged", Line{2, 2, 4, 0}, Line{4, 4, 0, 0}, true},
		{"no merge possible", Line{2, 4, 8, 16}, Line{2, 4, 8, 16}, false},
		{"slide with gap", Line{0, 0, 2, 2}, Line{4, 0, 0, 0}, true},
		{"gap closes then merges", Line{2, 0, 0, 2}, Line{4, 0, 0, 0}, true},
		{"already packed", Line{4, 2, 0, 0}, Line{4, 2, 0, 0}, false},
		{"empty line", Line{0, 0, 0, 0}, Line{0, 0, 0, 0}, false},
		{"single tile slides", Line{0, 4, 0, 0}, Line{4, 0, 0, 0}, true},
		{"trailing pair", Line{8, 4, 2, 2}, Line{8, 4, 4, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := MergeLine(tt.input)
			if got != tt.expected {
				t.Errorf("MergeLine(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if changed != tt.changed {
				t.Errorf("MergeLine(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestMergeLineWithoutEqualsOnlyCompacts(t *testing.T) {
	lines := []Line{
		{2, 0, 4, 8},
		{0, 16, 0, 2},
		{0, 0, 0, 32},
		{2, 4, 2, 4},
		{128, 0, 64, 0},
	}

	for _, line := range lines {
		var want Line
		n := 0
		for _, v := range line {
			if v != 0 {
				want[n] = v
				n++
			}
		}

		got, _ := MergeLine(line)
		if got != want {
			t.Errorf("MergeLine(%v) = %v, want compacted %v", line, got, want)
		}

		again, changed := MergeLine(got)
		if again != got || changed {
			t.Errorf("second MergeLine(%v) = %v changed=%v, want stable", got, again, changed)
		}
	}
}

func TestMergeLinePreservesTotal(t *testing.T) {
	lines := []Line{
		{2, 2, 2, 2},
		{4, 0, 4, 8},
		{2, 4, 4, 2},
		{16, 16, 0, 32},
	}
	for _, line := range lines {
		got, _ := MergeLine(line)
		if sum(got) != sum(line) {
			t.Errorf("MergeLine(%v) = %v changes total %d -> %d", line, got, sum(line), sum(got))
		}
	}
}

func sum(l Line) int {
	total := 0
	for _, v := range l {
		total += v
	}
	return total
}
