package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"Debug", "debug", zerolog.DebugLevel},
		{"Warn", "warn", zerolog.WarnLevel},
		{"Empty falls back to info", "", zerolog.InfoLevel},
		{"Garbage falls back to info", "loud", zerolog.InfoLevel},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := New(test.level)
			if got := l.GetLevel(); got != test.want {
				t.Errorf("New(%q) level = %s, want %s", test.level, got, test.want)
			}
		})
	}
}
