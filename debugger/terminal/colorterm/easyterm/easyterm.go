// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

//go:build !windows

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal)
type TermGeometry struct {
	// characters
	rows uint16
	cols uint16

	// pixels
	x uint16
	y uint16
}

// EasyTerm is the main container for posix terminals. usually embedded in
// other struct types
type EasyTerm struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control the window-resize signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// functions called from the signal handler are prefaced with (to prevent
	// race conditions, or worse):
	// 		pt.mu.Lock()
	// 		defer pt.mu.Unlock()
	mu sync.Mutex
}

// Initialise the terminal and prepare the attribute sets for each of the
// terminal modes we'll be switching between
func (pt *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil || outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input and an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// the canonical attributes are whatever is in effect at initialisation.
	// raw and cbreak attributes are derived from the canonical set so that
	// unrelated settings survive the round-trip
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	pt.cbreakAttr = pt.canAttr
	pt.cbreakAttr.Lflag &^= unix.ICANON | unix.ECHO
	pt.cbreakAttr.Cc[unix.VMIN] = 1
	pt.cbreakAttr.Cc[unix.VTIME] = 0

	// geometry is updated on every window-resize signal. prime it now so the
	// information is available immediately
	_ = pt.UpdateGeometry()

	// set up sig/ack channels for signal handler
	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	// kickstart signal handler
	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores the terminal to canonical mode and closes resources
// created in the Initialise() function
func (pt *EasyTerm) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// TermPrint writes the formatted string to the output file
func (pt *EasyTerm) TermPrint(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
	_ = pt.output.Sync()
}

// UpdateGeometry gets the current dimensions (in characters and pixels) of
// the output terminal
func (pt *EasyTerm) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: error updating terminal geometry: %w", err)
	}

	pt.Geometry.rows = ws.Row
	pt.Geometry.cols = ws.Col
	pt.Geometry.x = ws.Xpixel
	pt.Geometry.y = ws.Ypixel

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode
func (pt *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSAFLUSH, &pt.canAttr)
}

// RawMode puts terminal into raw mode
func (pt *EasyTerm) RawMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSAFLUSH, &pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode
func (pt *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSAFLUSH, &pt.cbreakAttr)
}

// Flush discards data waiting in the terminal's input and output buffers
func (pt *EasyTerm) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIOFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// SuspendProcess manually suspends the current process. useful if the
// terminal is in raw mode and so cannot generate the suspend signal itself.
// the terminal is returned to canonical mode for the duration of the
// suspension
func (pt *EasyTerm) SuspendProcess() error {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return fmt.Errorf("easyterm: cannot find current process: %w", err)
	}

	pt.CanonicalMode()
	if err := p.Signal(unix.SIGTSTP); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// execution continues from here once the process has been resumed
	pt.RawMode()

	return nil
}
