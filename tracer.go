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
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/cpu/disassembly"
)

type traceStyles struct {
	location    lipgloss.Style
	instruction lipgloss.Style
	undefined   lipgloss.Style
	regs        lipgloss.Style
	depth       lipgloss.Style
}

func newTraceStyles() traceStyles {
	return traceStyles{
		location:    lipgloss.NewStyle().Faint(true),
		instruction: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		undefined:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		regs:        lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(4)),
		depth:       lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(5)),
	}
}

// tracer writes one line for every interpreted instruction. the machine is
// stopped once limit instructions have been traced. a limit of zero means no
// limit
type tracer struct {
	output io.Writer
	styles traceStyles
	limit  int
	count  int
}

func newTracer(output io.Writer, limit int) *tracer {
	return &tracer{
		output: output,
		styles: newTraceStyles(),
		limit:  limit,
	}
}

// trace is installed with hardware.Machine.SetTracer(). iterations spent
// waiting in the halted state are not traced
func (trc *tracer) trace(m *hardware.Machine) {
	if m.CPU.Halted {
		return
	}

	if trc.limit > 0 && trc.count >= trc.limit {
		m.Stop()
		return
	}
	trc.count++

	e := disassembly.Disassemble(m.Mem, m.Regs().PC)

	ins := trc.styles.instruction
	if !e.Defined() {
		ins = trc.styles.undefined
	}

	fmt.Fprintf(trc.output, "%s %s  %s %s\n",
		trc.styles.location.Render(m.Location().String()),
		ins.Render(fmt.Sprintf("%-32s", e.String())),
		trc.styles.regs.Render(m.Regs().String()),
		trc.styles.depth.Render(fmt.Sprintf("[%d]", m.Depth())),
	)
}
