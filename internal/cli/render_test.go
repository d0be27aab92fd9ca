package cli

import (
	"testing"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		output  string
		want    string
		wantErr bool
	}{
		{"stdout defaults to dot", "", "", formatDOT, false},
		{"dash is stdout", "", "-", formatDOT, false},
		{"svg extension", "", "out/ingot.svg", formatSVG, false},
		{"upper case extension", "", "INGOT.SVG", formatSVG, false},
		{"gv extension", "", "ingot.gv", formatDOT, false},
		{"no extension", "", "ingot", formatDOT, false},
		{"flag beats extension", "dot", "ingot.svg", formatDOT, false},
		{"explicit svg", "svg", "", formatSVG, false},
		{"unknown flag", "png", "", "", true},
		{"unknown extension", "", "ingot.pdf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.format, tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveFormat(%q, %q) error = %v, wantErr %v", tt.format, tt.output, err, tt.wantErr)
			}
			if err != nil {
				if !fgerrors.Is(err, fgerrors.ErrCodeInvalidInput) {
					t.Errorf("error code = %s, want INVALID_INPUT", fgerrors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("resolveFormat(%q, %q) = %q, want %q", tt.format, tt.output, got, tt.want)
			}
		})
	}
}
