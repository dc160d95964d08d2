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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/assembler"
	"github.com/jetsetilly/gopher8/compiler"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlimgui"
	"github.com/jetsetilly/gopher8/lexer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/romfile"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// The whole program runs in the main goroutine, SDL included. The debugger
// is ticked from inside the GUI service loop so there is no synchronisation
// to speak of: creating the GUI, servicing it and destroying it all happen
// in the one function call chain below main().
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("DEBUG", "RUN", "DISASM", "BUILD", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "DEBUG":
		err = debug(md)
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "BUILD":
		err = build(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
		fmt.Printf("  %s\n", version.Revision())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// options shared by the two modes that put a window on the screen.
type guiOptions struct {
	scale      float64
	fullScreen bool
	mute       bool
	wav        string
	stats      bool
}

// addGuiFlags adds the flags behind guiOptions to the current parsing mode.
func addGuiFlags(md *modalflag.Modes) func() guiOptions {
	scale := md.AddFloat64("scale", 0.0, "display scale. zero means the saved preference")
	fullScreen := md.AddBool("fullscreen", false, "start in fullscreen")
	mute := md.AddBool("mute", false, "mute audio")
	wav := md.AddString("wav", "", "record audio to wav file (replaces live audio)")
	stats := md.AddBool("statsview", false, "run stats server")

	return func() guiOptions {
		return guiOptions{
			scale:      *scale,
			fullScreen: *fullScreen,
			mute:       *mute,
			wav:        *wav,
			stats:      *stats,
		}
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	opts := addGuiFlags(md)
	tick := md.AddInt("tick", 0, "machine tick rate in Hz. zero means the saved preference")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		// continues below
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dbg, err := debugger.NewDebugger()
	if err != nil {
		return err
	}

	if *tick > 0 {
		if err := dbg.SetTickHz(*tick); err != nil {
			return err
		}
	}

	if err := dbg.InsertFile(md.GetArg(0)); err != nil {
		return err
	}

	return guiLoop(dbg, govern.ModePlay, opts())
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	opts := addGuiFlags(md)
	tick := md.AddInt("tick", 0, "machine tick rate in Hz. zero means the saved preference")
	termType := md.AddString("term", "GUI", "terminal type to use in debug mode: GUI, COLOR, PLAIN")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}

	dbg, err := debugger.NewDebugger()
	if err != nil {
		return err
	}

	if *tick > 0 {
		if err := dbg.SetTickHz(*tick); err != nil {
			return err
		}
	}

	// a program file is optional in debug mode. without one the machine runs
	// nothing and the source editor is the way in
	switch len(md.RemainingArgs()) {
	case 0:
		// continues below
	case 1:
		if err := dbg.InsertFile(md.GetArg(0)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set up a running function. if profile generation has been requested it
	// is passed through ProfileCPU() rather than called directly
	dbgRun := func() error {
		if strings.ToUpper(*termType) == "GUI" {
			return guiLoop(dbg, govern.ModeDebugger, opts())
		}
		return termLoop(dbg, *termType, opts())
	}

	if *profile {
		if err := performance.ProfileCPU("debug.cpu.profile", dbgRun); err != nil {
			return err
		}
		return performance.ProfileMem("debug.mem.profile")
	}

	return dbgRun()
}

// guiLoop creates the GUI and services it until it quits. It is the main
// loop of the program for the RUN mode and the default DEBUG mode.
func guiLoop(dbg *debugger.Debugger, mode govern.Mode, opts guiOptions) error {
	launchStatsview(opts)

	scr, err := sdlimgui.NewSdlImgui(dbg, mode)
	if err != nil {
		return err
	}
	defer scr.Destroy(os.Stderr)

	// command line options override saved preferences for this session. the
	// preferences themselves are not changed until the user changes them
	if opts.scale > 0.0 {
		if err := scr.SetFeature(gui.ReqSetScale, float32(opts.scale)); err != nil {
			return err
		}
	}
	if opts.fullScreen {
		if err := scr.SetFeature(gui.ReqFullScreen, true); err != nil {
			return err
		}
	}
	if opts.mute {
		if err := scr.SetFeature(gui.ReqMuteAudio, true); err != nil {
			return err
		}
	}

	endWav := attachWav(dbg, opts)
	defer endWav()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for !scr.HasQuit() {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		default:
			scr.Service()
		}
	}

	return nil
}

// termLoop hands the program over to the terminal driven debugger. It is the
// main loop of the program when the DEBUG mode is asked for a COLOR or PLAIN
// terminal.
func termLoop(dbg *debugger.Debugger, termType string, opts guiOptions) error {
	launchStatsview(opts)

	endWav := attachWav(dbg, opts)
	defer endWav()

	var term terminal.Terminal

	switch strings.ToUpper(termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to PLAIN\n", termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	if err := dbg.RunTerminal(term); err != nil {
		return err
	}

	return dbg.Prefs().Save()
}

func launchStatsview(opts guiOptions) {
	if !opts.stats {
		return
	}
	if !statsview.Available() {
		fmt.Println("! statsview not included in this build")
		return
	}
	statsview.Launch(os.Stdout)
}

// attachWav attaches a wavwriter to the machine if one was asked for,
// displacing any mixer attached by the GUI. The returned function finishes
// the recording; it is a no-op if no recording was made.
func attachWav(dbg *debugger.Debugger, opts guiOptions) func() {
	if opts.wav == "" {
		return func() {}
	}

	aw := wavwriter.NewWavWriter(opts.wav)
	dbg.Mach().AttachAudio(aw)

	return func() {
		if err := aw.EndMixing(); err != nil {
			fmt.Printf("* %v\n", err)
		}
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		ldr := romfile.NewLoader(md.GetArg(0))
		if err := ldr.Load(); err != nil {
			return err
		}

		// source files run through the build pipeline before disassembly
		rom := ldr.Data
		if ldr.IsSource() {
			rom, err = buildROM(string(ldr.Data))
			if err != nil {
				return err
			}
		}

		if err := disassembly.FromROM(rom).Write(md.Output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func build(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("o", "", "output file. defaults to the input name with a .ch8 extension")
	listing := md.AddBool("listing", false, "print the assembly listing and hex dump after a successful build")

	md.AdditionalHelp(
		`The input is a program in the source language: a small block structured
language that compiles to CHIP-8 machine code. Variables, arithmetic, if/else,
while and functions are all present, written much as they would be in C.

The machine is reached through the uppercase builtins: DRAW(x, y, height)
draws a sprite; RAND(mask) returns a random number; KEY() waits for a
keypress; DT and ST are the delay and sound timers; I is the index register.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("source file required for %s mode", md)
	case 1:
		ldr := romfile.NewLoader(md.GetArg(0))
		if err := ldr.Load(); err != nil {
			return err
		}
		if !ldr.IsSource() {
			return fmt.Errorf("%s does not look like a source file", md.GetArg(0))
		}

		tokens, err := lexer.Lex(string(ldr.Data))
		if err != nil {
			return err
		}

		prg, err := compiler.Compile(tokens)
		if err != nil {
			return err
		}

		rom, err := assembler.Assemble(prg.Instructions)
		if err != nil {
			return err
		}

		fn := *output
		if fn == "" {
			fn = ldr.ShortName() + romfile.ROMExtension
		}
		if err := os.WriteFile(fn, rom, 0644); err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "%s: %d tokens, %d instructions, %d bytes\n",
			fn, len(tokens), len(prg.Instructions), len(rom))

		if *listing {
			fmt.Fprintln(md.Output, prg)
			fmt.Fprintln(md.Output, assembler.Listing(rom))
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		ldr := romfile.NewLoader(md.GetArg(0))
		if err := ldr.Load(); err != nil {
			return err
		}

		rom := ldr.Data
		if ldr.IsSource() {
			rom, err = buildROM(string(ldr.Data))
			if err != nil {
				return err
			}
		}

		if err := performance.Check(md.Output, *profile, rom, *duration); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// buildROM runs source through the build pipeline without a machine on the
// other end.
func buildROM(src string) ([]byte, error) {
	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}

	prg, err := compiler.Compile(tokens)
	if err != nil {
		return nil, err
	}

	return assembler.Assemble(prg.Instructions)
}
