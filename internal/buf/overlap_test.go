package buf

import "testing"

func TestOverlaps(t *testing.T) {
	data := make([]int, 10)
	other := make([]int, 10)

	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"same slice", data, data, true},
		{"prefix and suffix disjoint", data[:5], data[5:], false},
		{"shared element", data[:6], data[5:], true},
		{"different arrays", data, other, false},
		{"empty", data[:0], data, false},
		{"nil", nil, data, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}
