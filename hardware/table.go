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

package hardware

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Location identifies a point in the program. Addresses in the fixed ROM
// window always have a Bank of zero.
type Location struct {
	Bank    uint8
	Address uint16
}

func (l Location) String() string {
	return fmt.Sprintf("%02x:%04x", l.Bank, l.Address)
}

// NormaliseLocation returns the Location for the address with the given ROM
// bank mapped into the switchable window.
func NormaliseLocation(bank int, address uint16) Location {
	if address <= addresses.ROMFixedMemtop {
		return Location{Address: address}
	}
	return Location{Bank: uint8(bank), Address: address}
}

// Native is the signature of a native replacement for a program routine. The
// routine is run in place of the instruction at the override location and
// must leave the machine so that execution can continue. Usually this means
// finishing with a Pop() into the program counter.
type Native func(m *Machine)

// Entry is an override table entry. An Entry is either a native replacement
// or a guard. A guard marks a location that program code must never reach
// because the code at that location only exists as part of a native
// replacement. Reaching a guard is a fatal error.
type Entry struct {
	Name   string
	Native Native
}

// NewNative creates a table entry for a native replacement.
func NewNative(name string, fn Native) Entry {
	if fn == nil {
		panic(fmt.Sprintf("machine: native entry %s has no function", name))
	}
	return Entry{Name: name, Native: fn}
}

// NewGuard creates a guard entry.
func NewGuard(name string) Entry {
	return Entry{Name: name}
}

// IsGuard returns true if the entry is a guard.
func (e Entry) IsGuard() bool {
	return e.Native == nil
}

func (e Entry) String() string {
	if e.IsGuard() {
		return fmt.Sprintf("guard (%s)", e.Name)
	}
	return e.Name
}

// Table maps program locations to override entries. A Table is built before
// the Machine is created and is not changed afterwards.
type Table struct {
	entries map[Location]Entry
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{entries: make(map[Location]Entry)}
}

// Add an entry to the table. Adding a second entry for the same location is
// a programming error.
func (tab *Table) Add(loc Location, e Entry) {
	if loc.Address > addresses.ROMMemtop {
		panic(fmt.Sprintf("machine: override location %s is not in ROM", loc))
	}
	loc = NormaliseLocation(int(loc.Bank), loc.Address)
	if d, ok := tab.entries[loc]; ok {
		panic(fmt.Sprintf("machine: override location %s already used by %s", loc, d.Name))
	}
	tab.entries[loc] = e
}

// Lookup returns the entry at the location.
func (tab *Table) Lookup(loc Location) (Entry, bool) {
	if tab == nil {
		return Entry{}, false
	}
	e, ok := tab.entries[loc]
	return e, ok
}

// Find returns the location of the named entry.
func (tab *Table) Find(name string) (Location, bool) {
	for loc, e := range tab.entries {
		if e.Name == name {
			return loc, true
		}
	}
	return Location{}, false
}

// Len returns the number of entries in the table.
func (tab *Table) Len() int {
	return len(tab.entries)
}

// String returns the table in location order. One entry per line.
func (tab *Table) String() string {
	locs := make([]Location, 0, len(tab.entries))
	for loc := range tab.entries {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].Bank == locs[j].Bank {
			return locs[i].Address < locs[j].Address
		}
		return locs[i].Bank < locs[j].Bank
	})

	s := strings.Builder{}
	for _, loc := range locs {
		s.WriteString(fmt.Sprintf("%s %s\n", loc, tab.entries[loc]))
	}
	return s.String()
}
