package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Log("orientation %s -> %s", "horizontal", "vertical")

	if !strings.Contains(buf.String(), "orientation horizontal -> vertical") {
		t.Errorf("log output = %q, want formatted message", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "[") {
		t.Errorf("log output = %q, want timestamp prefix", buf.String())
	}
}

func TestLog_DisabledIsNoop(t *testing.T) {
	SetOutput(nil)

	Log("dropped")

	if Enabled() {
		t.Error("Enabled() = true after SetOutput(nil)")
	}
}

func TestInit_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reflow.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Log("hello %d", 42)
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello 42") {
		t.Errorf("file contents = %q, want logged message", data)
	}
}
