//go:build !windows

package doctor

import "os/exec"

// resetTerminal undoes raw mode left behind by a held key echoing into the
// tty while the checks run.
func resetTerminal() {
	exec.Command("stty", "sane").Run()
}
