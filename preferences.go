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
	"strings"

	"github.com/jetsetilly/gopherboy/gui"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/resources"
)

// maximum window scaling for the sdl and ebiten front ends.
const maxScale = 8

type preferences struct {
	dsk *prefs.Disk

	// name of the front end to use in RUN mode. one of gui.Frontends
	Frontend prefs.String

	// window scaling for the graphical front ends
	Scale prefs.Int

	// number of frames skipped between each frame drawn by the terminal
	// front end
	TermSkip prefs.Int

	// write the battery save when the emulation ends
	AutoWrite prefs.Bool

	// the RTC uses a clock that does not advance. useful for reproducible
	// runs
	FixedRTC prefs.Bool

	// launch the statistics server
	Statsview prefs.Bool
}

func (p *preferences) String() string {
	return p.dsk.String()
}

func newPreferences() (*preferences, error) {
	p := &preferences{}
	p.setDefaults()

	p.Frontend.SetHookPre(func(v prefs.Value) error {
		s := strings.ToLower(v.(string))
		for _, f := range gui.Frontends {
			if s == f {
				return nil
			}
		}
		return fmt.Errorf("unknown front end (%s)", s)
	})

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < 1 || s > maxScale {
			return fmt.Errorf("scale must be between 1 and %d", maxScale)
		}
		return nil
	})

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("gui.frontend", &p.Frontend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gui.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gui.termskip", &p.TermSkip)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("save.autowrite", &p.AutoWrite)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rtc.fixed", &p.FixedRTC)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("statsview", &p.Statsview)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// setDefaults reverts all settings to default values.
func (p *preferences) setDefaults() {
	_ = p.Frontend.Set(gui.FrontendSDL)
	_ = p.Scale.Set(3)
	_ = p.TermSkip.Set(2)
	_ = p.AutoWrite.Set(true)
	_ = p.FixedRTC.Set(false)
	_ = p.Statsview.Set(false)
}

// save current preferences to disk.
func (p *preferences) save() error {
	return p.dsk.Save()
}
