package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// chdirTemp runs the test inside a scratch directory so logs/ never lands in the source tree
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	log.Printf("engine: reset gen=1")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_RotatesToTimestampedName(t *testing.T) {
	chdirTemp(t)
	t.Cleanup(func() { log.SetFlags(log.LstdFlags) })

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	old := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(old, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	rotated, err := filepath.Glob(filepath.Join(logDir, "dla-*.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rotated) != 1 {
		t.Fatalf("Expected one rotated file, got %v", rotated)
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(rotated[0]), "dla-"), ".log")
	if _, err := time.Parse("20060102-150405", stamp); err != nil {
		t.Errorf("Expected dla-YYYYMMDD-HHMMSS.log, got %s", filepath.Base(rotated[0]))
	}
	if info, err := os.Stat(rotated[0]); err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated file to keep the old %d bytes, got %v (err %v)", maxLogSize+1, info, err)
	}

	if log.Flags()&log.Lmicroseconds == 0 {
		t.Errorf("Expected Lmicroseconds in log flags, got %b", log.Flags())
	}
	data, err := os.ReadFile(old)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "dla: logging started") {
		t.Errorf("Expected start line in fresh log, got %q", data)
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout {
		t.Error("Log output should not be stdout")
	}
	if output == os.Stderr {
		t.Error("Log output should not be stderr")
	}
}
