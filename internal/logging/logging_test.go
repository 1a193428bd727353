package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLogLevel(t *testing.T) {
	defer Log.SetLevel(logrus.WarnLevel)

	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
	}
	for in, want := range cases {
		if err := SetLogLevel(in); err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if Log.GetLevel() != want {
			t.Errorf("%s: expected %s, got %s", in, want, Log.GetLevel())
		}
	}
}

func TestSetLogLevel_Bad(t *testing.T) {
	if err := SetLogLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
