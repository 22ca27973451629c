// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/gui"
	"github.com/jetsetilly/gopherboy/gui/ebitenscreen"
	"github.com/jetsetilly/gopherboy/gui/sdlscreen"
	"github.com/jetsetilly/gopherboy/gui/termscreen"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/overrides"
	"github.com/jetsetilly/gopherboy/playmode"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/statsview"
	"github.com/jetsetilly/gopherboy/version"
)

// programs are entered at the cartridge entry point, as they would be after
// the boot ROM has finished.
const entryPoint = 0x0100

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this
// is required because some front ends (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the current front end
	//
	// when there is no front end the loop blocks on the channels.
	done := false
	var scr gui.GUI
	for !done {
		var service <-chan struct{}
		if scr != nil {
			service = alwaysReady
		}

		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if scr != nil {
				scr.Destroy(os.Stderr)
				scr = nil
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				scr = g
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-service:
			if !scr.Service() {
				scr.Destroy(os.Stderr)
				scr = nil
			}
		}
	}

	if scr != nil {
		scr.Destroy(os.Stderr)
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// a closed channel is always ready to receive. used to service the front end
// without blocking the main loop
var alwaysReady = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TRACE", "PERFORMANCE", "INFO", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "TRACE":
		err = trace(md)

	case "PERFORMANCE":
		err = perform(md)

	case "INFO":
		err = info(md)

	case "DUMP":
		err = dump(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// errNoCartridge is returned by modes that were not given a cartridge.
var errNoCartridge = errors.New("cartridge required")

// the common arguments for every mode that runs a cartridge. the function
// must be called before md.Parse()
type commonArgs struct {
	prefs *string
	log   *bool
}

func addCommonArgs(md *modalflag.Modes) commonArgs {
	return commonArgs{
		prefs: md.AddString("prefs", "", "preference values for this run (key::value; key::value)"),
		log:   md.AddBool("log", false, "echo log to stdout"),
	}
}

// apply the common arguments and load the preferences. the command line
// preferences group is popped by the returned function
func (args commonArgs) apply() (*preferences, func(), error) {
	if *args.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*args.prefs)
	pop := func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}

	p, err := newPreferences()
	if err != nil {
		pop()
		return nil, nil, err
	}

	return p, pop, nil
}

// newMachine loads the cartridge and prepares a machine with the native
// routines installed. the battery save is loaded if it exists.
func newMachine(md *modalflag.Modes, p *preferences) (*hardware.Machine, *cartridge.Cartridge, cartridgeloader.Loader, error) {
	var cl cartridgeloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, cl, errNoCartridge
	case 1:
	default:
		return nil, nil, cl, fmt.Errorf("too many arguments for %s mode", md)
	}

	cl, err := cartridgeloader.NewLoader(md.GetArg(0))
	if err != nil {
		return nil, nil, cl, err
	}
	err = cl.Load()
	if err != nil {
		return nil, nil, cl, err
	}

	var clk cartridge.Clock = cartridge.SystemClock{}
	if p.FixedRTC.Get().(bool) {
		clk = &cartridge.FixedClock{}
	}

	cart, err := cartridge.NewCartridge(cl.Data, clk)
	if err != nil {
		return nil, nil, cl, err
	}

	if f, err := os.Open(cl.SaveFilename); err == nil {
		err = cart.LoadSave(f)
		f.Close()
		if err != nil {
			return nil, nil, cl, err
		}
	}

	m := hardware.NewMachine(cart, overrides.NewTable())
	m.Reset()

	return m, cart, cl, nil
}

// writeSave writes the battery save for the cartridge.
func writeSave(cart *cartridge.Cartridge, cl cartridgeloader.Loader) error {
	f, err := os.Create(cl.SaveFilename)
	if err != nil {
		return err
	}
	err = cart.WriteSave(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	args := addCommonArgs(md)
	frontend := md.AddString("frontend", "", "front end to use (sdl, ebiten, term)")
	scale := md.AddInt("scale", 0, "window scaling (sdl and ebiten only)")
	stats := md.AddBool("statsview", false, "run stats server")
	savePrefs := md.AddBool("saveprefs", false, "save preferences after setting them with -frontend or -scale")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, pop, err := args.apply()
	if err != nil {
		return err
	}
	defer pop()

	if *frontend != "" {
		if err := pref.Frontend.Set(*frontend); err != nil {
			return err
		}
	}
	if *scale != 0 {
		if err := pref.Scale.Set(*scale); err != nil {
			return err
		}
	}
	if *savePrefs {
		if err := pref.save(); err != nil {
			return err
		}
	}

	if *stats || pref.Statsview.Get().(bool) {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	m, cart, cl, err := newMachine(md, pref)
	if err != nil {
		return err
	}

	session := playmode.NewSession(m, playmode.InputBuffer)

	// ctrl-c closes the session rather than ending the program immediately.
	// this gives the session the chance to write the battery save
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		select {
		case <-intChan:
			session.Close()
		case <-session.Ended():
		}
	}()

	fe := pref.Frontend.String()
	sz := pref.Scale.Get().(int)
	skip := pref.TermSkip.Get().(int)
	sync.creator <- func() (gui.GUI, error) {
		switch fe {
		case gui.FrontendSDL:
			return sdlscreen.NewSdlScreen(session, sz)
		case gui.FrontendEbiten:
			return ebitenscreen.NewEbitenScreen(session, sz), nil
		case gui.FrontendTerm:
			return termscreen.NewTermScreen(session, skip)
		}
		return nil, fmt.Errorf(gui.UnsupportedFrontend, fe)
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	logger.Logf(logger.Allow, "gopherboy", "running %s with %s front end", cl.ShortName(), fe)

	session.Start(entryPoint)
	stopped := session.Wait()
	logger.Logf(logger.Allow, "gopherboy", "session ended (stopped=%v, dropped input=%d)", stopped, session.Dropped())

	if pref.AutoWrite.Get().(bool) {
		return writeSave(cart, cl)
	}

	return nil
}
