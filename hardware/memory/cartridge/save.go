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

package cartridge

import (
	"encoding/binary"
	"io"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

// SaveSize is the size of the battery save image: the RTC epoch as an 8 byte
// big-endian value followed by the external RAM.
const SaveSize = 8 + RAMSize

// LoadSave restores the external RAM and the RTC epoch from the battery save
// image.
func (cart *Cartridge) LoadSave(r io.Reader) error {
	var epoch [8]byte
	if _, err := io.ReadFull(r, epoch[:]); err != nil {
		return curated.Errorf(SaveImageTruncated, err)
	}

	ram := make([]uint8, RAMSize)
	if _, err := io.ReadFull(r, ram); err != nil {
		return curated.Errorf(SaveImageTruncated, err)
	}

	cart.RTC.Epoch = int64(binary.BigEndian.Uint64(epoch[:]))
	copy(cart.ram, ram)

	logger.Logf(logger.Allow, "save", "loaded (rtc epoch %d)", cart.RTC.Epoch)

	return nil
}

// WriteSave writes the battery save image.
func (cart *Cartridge) WriteSave(w io.Writer) error {
	var epoch [8]byte
	binary.BigEndian.PutUint64(epoch[:], uint64(cart.RTC.Epoch))

	if _, err := w.Write(epoch[:]); err != nil {
		return curated.Errorf(SaveImageWrite, err)
	}
	if _, err := w.Write(cart.ram); err != nil {
		return curated.Errorf(SaveImageWrite, err)
	}

	logger.Logf(logger.Allow, "save", "written (rtc epoch %d)", cart.RTC.Epoch)

	return nil
}
