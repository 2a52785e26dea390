//go:build !windows && !linux

package source

// Open has no implementation outside Windows and Linux.
func Open() (Closer, error) {
	return nil, ErrUnsupported
}

// Diagnose reports that no source exists for this platform.
func Diagnose() (string, error) {
	return "", ErrUnsupported
}
