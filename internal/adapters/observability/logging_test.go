package observability_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"hotel_platform/internal/adapters/observability"
)

func TestNewLoggerTagsService(t *testing.T) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	l := observability.NewLogger("api", "production")
	l.Info().Msg("boot")
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	line := string(out)
	if !strings.Contains(line, `"service":"api"`) {
		t.Errorf("log line %q missing service field", line)
	}
	if !strings.Contains(line, `"message":"boot"`) {
		t.Errorf("log line %q missing message", line)
	}
}
