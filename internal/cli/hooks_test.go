package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		err   error
		want  string
	}{
		{"debug success", log.DebugLevel, nil, "records=3"},
		{"debug failure", log.DebugLevel, errors.New("boom"), "load failed"},
		{"info is silent", log.InfoLevel, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := LogHooks(newLogger(&buf, tt.level))
			h.OnLoadStart(context.Background(), "classes", "data/classes.csv")
			h.OnLoadComplete(context.Background(), "classes", "data/classes.csv", 3, time.Millisecond, tt.err)

			if tt.want == "" {
				if buf.Len() != 0 {
					t.Errorf("unexpected output %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q missing %q", buf.String(), tt.want)
			}
		})
	}
}
