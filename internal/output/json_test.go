package output

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Writer
	Writer = &buf
	t.Cleanup(func() { Writer = prev })
	return &buf
}

func TestJSON_KeepsURLsReadable(t *testing.T) {
	buf := capture(t)

	err := JSON(map[string]string{"url": "https://x/?a=1&b=2", "name": "厦门北"})
	if err != nil {
		t.Fatalf("json failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "a=1&b=2") {
		t.Errorf("ampersand escaped: %s", out)
	}
	if !strings.Contains(out, "厦门北") {
		t.Errorf("expected raw UTF-8 name: %s", out)
	}
	if !strings.Contains(out, "\n  ") {
		t.Errorf("expected indented output: %s", out)
	}
}

func TestJSONError(t *testing.T) {
	buf := capture(t)

	JSONError("catalog failed", "boom")
	if !strings.Contains(buf.String(), `"error": "catalog failed"`) {
		t.Errorf("unexpected output %s", buf.String())
	}
}

func TestLine(t *testing.T) {
	buf := capture(t)

	if err := Line("hello"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
