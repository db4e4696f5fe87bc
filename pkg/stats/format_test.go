package stats

import (
	"fmt"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{12345, "12.3K"},
		{999949, "999.9K"},
		{999999, "1000.0K"},
		{1_000_000, "1.0M"},
		{2_340_000, "2.3M"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.n); got != tt.want {
				t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func ExampleFormatNumber() {
	fmt.Println(FormatNumber(42))
	fmt.Println(FormatNumber(1500))
	fmt.Println(FormatNumber(2_500_000))
	// Output:
	// 42
	// 1.5K
	// 2.5M
}
