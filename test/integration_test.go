//go:build integration

package test_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"keypoll/source"
)

var testBinary string

func TestMain(m *testing.M) {
	testBinary = os.Getenv("KEYPOLL_TEST_BIN")
	if testBinary == "" {
		fmt.Fprintln(os.Stderr, "KEYPOLL_TEST_BIN not set; build the binary and point KEYPOLL_TEST_BIN at it")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func runKeypoll(t *testing.T, args ...string) (string, error) {
	t.Helper()
	empty := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cmd := exec.Command(testBinary, args...)
	cmd.Env = append(os.Environ(), "KEYPOLL_CONFIG="+empty)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func readLog(t *testing.T, logDir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("failed to read %s: %v", filename, err)
	}
	return string(data)
}

func requireInputAccess(t *testing.T) {
	t.Helper()
	if _, err := source.Diagnose(); err != nil {
		t.Skipf("no key state access: %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := runKeypoll(t, "-version")
	if err != nil {
		t.Fatalf("keypoll -version: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "keypoll ") {
		t.Errorf("output = %q", out)
	}
}

func TestListKeys(t *testing.T) {
	out, err := runKeypoll(t, "-list")
	if err != nil {
		t.Fatalf("keypoll -list: %v\n%s", err, out)
	}
	for _, want := range []string{"0x10", "SHIFT", "SNAPSHOT", "PRINT SCREEN key"} {
		if !strings.Contains(out, want) {
			t.Errorf("-list output missing %q", want)
		}
	}
}

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypoll", "config.yaml")
	out, err := runKeypoll(t, "-config", path, "-write-config", "-keys", "shift,space", "-interval", "5ms")
	if err != nil {
		t.Fatalf("keypoll -write-config: %v\n%s", err, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"interval: 5ms", "- shift", "- space"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config missing %q:\n%s", want, data)
		}
	}
}

func TestRejectsUnknownKey(t *testing.T) {
	out, err := runKeypoll(t, "-keys", "bogus", "-tui=false")
	if err == nil {
		t.Fatalf("expected failure, got output %q", out)
	}
	if !strings.Contains(out, "bogus") {
		t.Errorf("error does not name the key: %q", out)
	}
}

func TestPlainRunLogsSampler(t *testing.T) {
	requireInputAccess(t)
	logDir := t.TempDir()

	cmd := exec.Command(testBinary, "-tui=false", "-journal", "-logpath", logDir, "-keys", "shift")
	if err := cmd.Start(); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Wait(); err != nil {
		t.Fatalf("keypoll exited with error: %v", err)
	}

	diag := readLog(t, logDir, "diagnostics_log.txt")
	for _, want := range []string{"sampler_start", "sampler_stop"} {
		if !strings.Contains(diag, want) {
			t.Errorf("diagnostics missing %q:\n%s", want, diag)
		}
	}
	if _, err := os.Stat(filepath.Join(logDir, "events_log.txt")); err != nil {
		t.Errorf("journal not created: %v", err)
	}
}
