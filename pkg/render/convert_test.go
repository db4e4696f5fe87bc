package render

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/matzehuels/ghstats/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"><rect width="4" height="4" fill="#000"/></svg>`

func TestToPNG(t *testing.T) {
	if _, err := exec.LookPath(Converter); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG(context.Background(), []byte(tinySVG), 2)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestToPNGMissingConverter(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := ToPNG(context.Background(), []byte(tinySVG), 1)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ToPNG() error = %v, want INVALID_FORMAT", err)
	}
}
