package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"keypoll/config"
	"keypoll/doctor"
	"keypoll/engine"
	"keypoll/hotkey"
	"keypoll/keycode"
	"keypoll/log"
	"keypoll/shutdown"
	"keypoll/source"
)

var version = "dev"

// doctorCombo is checked by -doctor when no hotkey is configured.
var doctorCombo = hotkey.Combo{Key: keycode.Space, Ctrl: true, Shift: true}

func main() {
	os.Exit(run())
}

func run() int {
	configFlag := flag.String("config", "", "config file path (default: OS config dir, or KEYPOLL_CONFIG)")
	keysFlag := flag.String("keys", "", "comma separated keys to watch, by name or code (e.g. shift,0x20,lctrl)")
	allFlag := flag.Bool("all", false, "watch every known key")
	intervalFlag := flag.Duration("interval", engine.DefaultInterval, "delay between samples, 0 busy-polls")
	baselineFlag := flag.String("baseline", "suppress", "keys held at start: suppress, prime or report")
	hotkeyFlag := flag.String("hotkey", "", "hotkey to classify as tap or hold (e.g. ctrl+shift+space)")
	longPressFlag := flag.Duration("longpress", 300*time.Millisecond, "hold threshold for -hotkey")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	journalFlag := flag.Bool("journal", false, "append every transition to events_log.txt")
	listFlag := flag.Bool("list", false, "print the key table and exit")
	writeConfigFlag := flag.Bool("write-config", false, "write the effective configuration to the config path and exit")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run input diagnostics and exit")
	tuiFlag := flag.Bool("tui", true, "Run with terminal UI when stdout is a terminal")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("keypoll %s\n", version)
		return 0
	}
	if *listFlag {
		printKeys()
		return 0
	}

	cfgPath, explicit, err := config.ResolvePath(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve config path: %v\n", err)
		return 1
	}
	// -write-config may create the file it names.
	cfg, err := config.Load(cfgPath, explicit && !*writeConfigFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "keys":
			cfg.Keys = splitKeys(*keysFlag)
		case "all":
			cfg.AllKeys = *allFlag
		case "interval":
			cfg.Interval = intervalFlag.String()
		case "baseline":
			cfg.Baseline = *baselineFlag
		case "hotkey":
			cfg.Hotkey.Combo = *hotkeyFlag
		case "longpress":
			cfg.Hotkey.LongPress = longPressFlag.String()
		case "logpath":
			cfg.LogPath = *logPathFlag
		case "journal":
			cfg.Journal = *journalFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *writeConfigFlag {
		if err := cfg.Save(cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Wrote %s\n", cfgPath)
		return 0
	}

	if *doctorFlag {
		combo, ok, _ := cfg.Combo()
		if !ok {
			combo = doctorCombo
		}
		return doctor.Run(combo)
	}

	// Resolve log directory early
	logPath, err := log.ResolveDir(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		return 1
	}
	log.SetDir(logPath)
	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}
	initCrashLog()

	if err := log.Init(cfg.Journal); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	src, err := source.Open()
	if err != nil {
		log.Errorf("source open error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: cannot read key state: %v\n", err)
		return 1
	}
	defer src.Close()

	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	e, err := engine.New(src, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if cfg.AllKeys {
		e.RegisterAllKnownKeys()
	}

	ctx, cancel := shutdown.Context(context.Background())
	defer cancel()

	if err := e.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer e.Stop()

	var hy *hotkey.Hybrid
	if combo, ok, _ := cfg.Combo(); ok {
		hk := hotkey.New(e, combo)
		if err := hk.Register(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not register hotkey: %v\n", err)
			return 1
		}
		defer hk.Unregister()
		longPress, _ := cfg.LongPress()
		hy = hotkey.NewHybrid(hk, longPress)
		defer hy.Close()
	}

	stream, err := e.Subscribe(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer stream.Close()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if *tuiFlag && interactive {
		err = runTUI(ctx, cancel, e, stream, hy)
	} else {
		err = runPlain(e, stream, hy, interactive)
	}
	if err != nil && !interruptedBySignal(ctx, err) {
		log.Errorf("session error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func initCrashLog() {
	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
	debug.SetCrashOutput(crashFile, debug.CrashOptions{})
}

// interruptedBySignal reports whether err is the sampler ending because of
// a termination signal, which is a normal exit.
func interruptedBySignal(ctx context.Context, err error) bool {
	var se *shutdown.SignalError
	return errors.Is(err, engine.ErrSamplingInterrupted) && errors.As(context.Cause(ctx), &se)
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

var (
	pressedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	releasedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	modStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	hotkeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

// formatEvent renders one transition as a log line. Styling is applied only
// when color is set.
func formatEvent(ev engine.Event, color bool) string {
	state := fmt.Sprintf("%-8s", ev.State)
	mods := ""
	if m := ev.Modifiers.String(); m != "" {
		mods = "[" + m + "]"
	}
	if color {
		if ev.State == engine.Pressed {
			state = pressedStyle.Render(state)
		} else {
			state = releasedStyle.Render(state)
		}
		mods = modStyle.Render(mods)
	}
	line := fmt.Sprintf("%s  %-20s 0x%02X  %s %s",
		ev.Time.Format("15:04:05.000"), ev.Code, uint16(ev.Code), state, mods)
	return strings.TrimRight(line, " ")
}

func runPlain(e *engine.Engine, s *engine.Stream, hy *hotkey.Hybrid, color bool) error {
	fmt.Printf("Watching %d key(s). Ctrl+C to quit.\n", len(e.Registered()))

	var start <-chan hotkey.StartEvent
	var stop <-chan struct{}
	if hy != nil {
		start, stop = hy.Start(), hy.StopChan()
	}
	for {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				return s.Err()
			}
			fmt.Println(formatEvent(ev, color))
		case st := <-start:
			fmt.Println(renderHotkey(fmt.Sprintf("hotkey on (%s)", st.Mode), color))
		case <-stop:
			fmt.Println(renderHotkey("hotkey off", color))
		}
	}
}

func renderHotkey(text string, color bool) string {
	if color {
		return hotkeyStyle.Render(text)
	}
	return text
}

func printKeys() {
	for _, k := range keycode.Keys() {
		fmt.Printf("0x%02X  %-22s %s\n", uint16(k.Code), k.Name, k.Description)
	}
}
