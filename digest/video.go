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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/video"
)

// Video is an implementation of the video.FrameSink interface that produces
// a chained sha1 value of every frame it receives. The frame is then passed
// to the next sink, if there is one.
//
// The use of sha1 is fine for this application because this is not a
// cryptographic task.
type Video struct {
	next   video.FrameSink
	digest [sha1.Size]byte
	frames int

	// the previous digest followed by the pixels of the frame
	buffer []byte
}

// NewVideo is the preferred method of initialisation for the Video type. The
// next sink can be nil.
func NewVideo(next video.FrameSink) *Video {
	return &Video{
		next:   next,
		buffer: make([]byte, sha1.Size+video.Width*video.Height*4),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Present implements the video.FrameSink interface.
func (dig *Video) Present(frame *video.Frame) {
	n := copy(dig.buffer, dig.digest[:])
	copy(dig.buffer[n:], frame.Pixels[:])
	dig.digest = sha1.Sum(dig.buffer)
	dig.frames++

	if dig.next != nil {
		dig.next.Present(frame)
	}
}
