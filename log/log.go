package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog     zerolog.Logger
	diagFile    *os.File
	journalFile *os.File
	logMu       sync.Mutex
	logReady    bool
	journalOn   bool
	pid         int
	dir         string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absolute(flagPath)
	}

	// Priority 2: KEYPOLL_LOG_PATH environment variable
	if envPath := os.Getenv("KEYPOLL_LOG_PATH"); envPath != "" {
		return absolute(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absolute(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

// Init opens diagnostics_log.txt and, when journal is set, events_log.txt
// with one line per key transition.
func Init(journal bool) error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if journal {
		journalPath := filepath.Join(dir, "events_log.txt")
		journalFile, err = os.OpenFile(journalPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			diagFile.Close()
			diagFile = nil
			return err
		}
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	journalOn = journal
	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if journalFile != nil {
		journalFile.Close()
		journalFile = nil
	}
	logReady = false
	journalOn = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func SamplerStart(interval time.Duration, keys int, baseline string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Dur("interval", interval).
		Int("keys", keys).
		Str("baseline", baseline).
		Msg("sampler_start")
}

func SamplerStop(err error) {
	if !logReady {
		return
	}
	if err != nil {
		diagLog.Warn().Err(err).Msg("sampler_stop")
		return
	}
	diagLog.Info().Msg("sampler_stop")
}

func QueryFailure(code uint16, name string, err error) {
	if !logReady {
		return
	}
	diagLog.Warn().
		Uint16("code", code).
		Str("key", name).
		Err(err).
		Msg("query_failed")
}

func QueryRecovered(code uint16, name string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Uint16("code", code).
		Str("key", name).
		Msg("query_recovered")
}

func ListenerPanic(id uint64, value any, stack []byte) {
	if !logReady {
		return
	}
	diagLog.Error().
		Uint64("listener", id).
		Interface("panic", value).
		Bytes("stack", stack).
		Msg("listener_panic")
}

// Transition appends one key transition to events_log.txt.
func Transition(at time.Time, code uint16, name, state, modifiers string) {
	if !logReady || !journalOn {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	if journalFile == nil {
		return
	}
	line := fmt.Sprintf("%s\t[%d]\t0x%02X\t%s\t%s\t%s\n", at.Format("2006-01-02 15:04:05.000"), pid, code, name, state, modifiers)
	journalFile.WriteString(line)
}
