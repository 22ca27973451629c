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
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/digest"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/clocks"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/video"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/overrides"
)

func trace(md *modalflag.Modes) error {
	md.NewMode()

	args := addCommonArgs(md)
	limit := md.AddInt("n", 1000, "number of instructions to trace (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, pop, err := args.apply()
	if err != nil {
		return err
	}
	defer pop()

	m, _, _, err := newMachine(md, pref)
	if err != nil {
		return err
	}

	trc := newTracer(os.Stdout, *limit)
	m.SetTracer(trc.trace)
	m.Execute(entryPoint)

	fmt.Printf("%d instructions traced in %d cycles\n", trc.count, m.Cycles)

	return nil
}

// frameCounter stops the machine after a number of frames. used by the
// headless modes.
type frameCounter struct {
	m      *hardware.Machine
	next   video.FrameSink
	limit  int
	frames int
}

// Present implements the video.FrameSink interface.
func (fc *frameCounter) Present(frame *video.Frame) {
	if fc.next != nil {
		fc.next.Present(frame)
	}
	fc.frames++
	if fc.frames >= fc.limit {
		fc.m.Stop()
	}
}

// runFrames runs the machine without a front end for the number of frames.
// every frame is passed to the next sink, which can be nil. returns the
// number of frames actually run, which will be fewer than requested if the
// program returned.
func runFrames(m *hardware.Machine, frames int, next video.FrameSink) int {
	fc := &frameCounter{m: m, next: next, limit: frames}
	m.Mem.Video.SetSink(fc)
	m.Execute(entryPoint)
	return fc.frames
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	args := addCommonArgs(md)
	frames := md.AddInt("frames", 600, "number of frames to run")
	profile := md.AddString("profile", "", "write CPU profile to file")
	hash := md.AddBool("digest", false, "print digest of video output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, pop, err := args.apply()
	if err != nil {
		return err
	}
	defer pop()

	m, _, _, err := newMachine(md, pref)
	if err != nil {
		return err
	}

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			return err
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	var dig *digest.Video
	var next video.FrameSink
	if *hash {
		dig = digest.NewVideo(nil)
		next = dig
	}

	startTime := time.Now()
	n := runFrames(m, *frames, next)
	elapsed := time.Since(startTime).Seconds()

	fps := float64(n) / elapsed
	fmt.Printf("%d frames in %.2f seconds\n", n, elapsed)
	fmt.Printf("%.2f fps (%.1f%% of real hardware)\n", fps, fps/clocks.FrameRate*100)
	fmt.Printf("%d cycles (%.1f frames at single speed)\n", m.Cycles, float64(m.Cycles)/clocks.CyclesPerFrame)

	if dig != nil {
		fmt.Printf("digest: %s\n", dig.Hash())
	}

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return errNoCartridge
	}

	cl, err := cartridgeloader.NewLoader(md.GetArg(0))
	if err != nil {
		return err
	}
	err = cl.Load()
	if err != nil {
		return err
	}

	hdr, err := cartridge.ParseHeader(cl.Data)
	if err != nil {
		return err
	}

	fmt.Println(hdr)
	fmt.Printf("hash: %s\n", cl.Hash)
	fmt.Printf("save: %s\n", cl.SaveFilename)
	fmt.Println()
	fmt.Println("native routines and guards:")
	fmt.Print(overrides.NewTable())

	return nil
}

// machineState is the part of the machine shown by the DUMP mode. the full
// machine is too large to be usefully graphed
type machineState struct {
	Location   hardware.Location
	Registers  registers.File
	IME        bool
	Halted     bool
	Cycles     uint64
	Speed      memory.Speed
	ROMBank    int
	WRAMBank   int
	Interrupts *interrupts.Controller
	RTC        *cartridge.RTC
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	args := addCommonArgs(md)
	frames := md.AddInt("frames", 60, "number of frames to run before dumping")
	out := md.AddString("out", "", "write graph to file rather than stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, pop, err := args.apply()
	if err != nil {
		return err
	}
	defer pop()

	m, cart, _, err := newMachine(md, pref)
	if err != nil {
		return err
	}

	runFrames(m, *frames, nil)

	state := &machineState{
		Location:   m.Location(),
		Registers:  *m.Regs(),
		IME:        m.CPU.IME,
		Halted:     m.CPU.Halted,
		Cycles:     m.Cycles,
		Speed:      m.Mem.Speed(),
		ROMBank:    m.Mem.ROMBank(),
		WRAMBank:   m.Mem.WRAMBank(),
		Interrupts: m.Mem.Interrupts,
		RTC:        cart.RTC,
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	// output is in the graphviz dot format
	memviz.Map(w, state)

	return nil
}
