//go:build linux

package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"keypoll/keycode"
)

// KEY_MAX is 0x2ff, so the key state bitmap is 96 bytes.
const keyBitmapLen = 96

// Bitmaps younger than this are reused, so one tick over many codes costs
// one ioctl per device instead of one per code.
const bitmapMaxAge = time.Millisecond

// evioCGKey builds EVIOCGKEY(len): _IOC(_IOC_READ, 'E', 0x18, len).
func evioCGKey(n int) uintptr {
	return uintptr(2)<<30 | uintptr(n)<<16 | uintptr('E')<<8 | 0x18
}

type evdevSource struct {
	mu      sync.Mutex
	files   []*os.File
	bitmaps [][keyBitmapLen]byte
	readAt  time.Time
	once    sync.Once
}

// Open returns a source that reads the key state bitmap of every evdev
// device with key capabilities. Requires read access to /dev/input (the
// 'input' group).
func Open() (Closer, error) {
	devices, err := findKeyDevices()
	if err != nil {
		return nil, fmt.Errorf("finding input devices: %w", err)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no input devices with keys found (is user in 'input' group?)")
	}

	s := &evdevSource{}
	for _, path := range devices {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		s.files = append(s.files, f)
	}
	if len(s.files) == 0 {
		return nil, fmt.Errorf("could not open any input device (run: sudo usermod -aG input $USER, then re-login)")
	}
	s.bitmaps = make([][keyBitmapLen]byte, len(s.files))
	return s, nil
}

func (s *evdevSource) Query(code keycode.Code) (uint16, error) {
	targets, ok := evdevCodes[code]
	if !ok {
		return 0, ErrUnmapped
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(); err != nil {
		return 0, err
	}
	for i := range s.bitmaps {
		for _, t := range targets {
			if s.bitmaps[i][t/8]&(1<<(t%8)) != 0 {
				return PressedMask, nil
			}
		}
	}
	return 0, nil
}

func (s *evdevSource) refresh() error {
	if len(s.files) == 0 {
		return os.ErrClosed
	}
	if time.Since(s.readAt) < bitmapMaxAge {
		return nil
	}
	var errs []error
	for i, f := range s.files {
		buf := &s.bitmaps[i]
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), evioCGKey(keyBitmapLen), uintptr(unsafe.Pointer(&buf[0])))
		if errno != 0 {
			*buf = [keyBitmapLen]byte{}
			errs = append(errs, fmt.Errorf("%s: %w", f.Name(), errno))
		}
	}
	if len(errs) == len(s.files) {
		return errors.Join(errs...)
	}
	s.readAt = time.Now()
	return nil
}

func (s *evdevSource) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, f := range s.files {
			f.Close()
		}
		s.files = nil
		s.bitmaps = nil
	})
	return nil
}

func findKeyDevices() ([]string, error) {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		return nil, err
	}

	var devices []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		if hasKeys(e.Name()) {
			devices = append(devices, filepath.Join("/dev/input", e.Name()))
		}
	}
	return devices, nil
}

// hasKeys reports whether the device advertises any EV_KEY code. Mice
// qualify through their BTN_* codes.
func hasKeys(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	caps := strings.TrimSpace(string(data))
	return strings.Trim(caps, "0 ") != ""
}

// Diagnose checks evdev access and returns a status message.
func Diagnose() (string, error) {
	devices, err := findKeyDevices()
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	if len(devices) == 0 {
		return "", fmt.Errorf("no input devices with keys found (is user in 'input' group?)")
	}

	opened := 0
	for _, path := range devices {
		f, err := os.Open(path)
		if err == nil {
			f.Close()
			opened++
		}
	}
	if opened == 0 {
		return "", fmt.Errorf("found %d input device(s) but cannot open any (run: sudo usermod -aG input $USER)", len(devices))
	}

	return fmt.Sprintf("%d input device(s) found, %d readable", len(devices), opened), nil
}
