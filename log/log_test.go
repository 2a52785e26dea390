package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("KEYPOLL_LOG_PATH", "/tmp/keypoll-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/keypoll-env-log" {
		t.Errorf("got %q, want /tmp/keypoll-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv("KEYPOLL_LOG_PATH", "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "keypoll") {
		t.Errorf("default directory %q does not mention keypoll", got)
	}
}

func TestInitCreatesFiles(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(true); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"diagnostics_log.txt", "events_log.txt"} {
		path := filepath.Join(tmp, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
}

func TestInitWithoutJournal(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(false); err != nil {
		t.Fatal(err)
	}
	Transition(time.Now(), 0x10, "SHIFT", "pressed", "")

	if _, err := os.Stat(filepath.Join(tmp, "events_log.txt")); !os.IsNotExist(err) {
		t.Errorf("events_log.txt should not exist, stat err = %v", err)
	}
}

func TestTransition(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(true); err != nil {
		t.Fatal(err)
	}

	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local)
	Transition(at, 0xA0, "LEFT_SHIFT", "pressed", "shift")

	data, err := os.ReadFile(filepath.Join(tmp, "events_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	for _, want := range []string{"2024-05-01 12:30:00.000", "0xA0", "LEFT_SHIFT", "pressed", "shift"} {
		if !strings.Contains(line, want) {
			t.Errorf("events_log.txt missing %q, got: %q", want, line)
		}
	}
	// format: "time\t[pid]\tcode\tname\tstate\tmods\n"
	if got := strings.Count(line, "\t"); got != 5 {
		t.Errorf("expected 5 tabs, got %d in %q", got, line)
	}
}

func TestDiagnosticsHelpers(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(false); err != nil {
		t.Fatal(err)
	}

	SamplerStart(10*time.Millisecond, 3, "suppress")
	QueryFailure(0x10, "SHIFT", errors.New("device gone"))
	QueryRecovered(0x10, "SHIFT")
	SamplerStop(nil)
	Close()

	data, err := os.ReadFile(filepath.Join(tmp, "diagnostics_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"sampler_start", "query_failed", "device gone", "query_recovered", "sampler_stop"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("diagnostics log missing %q", want)
		}
	}
}

func TestHelpersNoopBeforeInit(t *testing.T) {
	Close()
	SamplerStart(time.Millisecond, 1, "suppress")
	QueryFailure(1, "x", errors.New("x"))
	Transition(time.Now(), 1, "x", "pressed", "")
}

func TestCloseIdempotent(t *testing.T) {
	setupLogDir(t)

	if err := Init(true); err != nil {
		t.Fatal(err)
	}
	Close()
	Close() // should not panic
}
