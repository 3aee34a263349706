package notification

import "testing"

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
		want int
	}{
		{name: "first page starts at zero", page: 1, size: 10, want: 0},
		{name: "second page", page: 2, size: 10, want: 10},
		{name: "third page small size", page: 3, size: 5, want: 10},
		{name: "zero clamps to first page", page: 0, size: 10, want: 0},
		{name: "negative clamps to first page", page: -3, size: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pageOffset(tt.page, tt.size); got != tt.want {
				t.Fatalf("pageOffset(%d, %d) = %d, want %d", tt.page, tt.size, got, tt.want)
			}
		})
	}
}
