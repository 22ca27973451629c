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

// Package version reports the version of the program. The version number is
// set at link time with:
//
//	-ldflags "-X github.com/jetsetilly/gopherboy/version.number=v0.1.0"
//
// Without a number the version is "unreleased" for builds with version
// control information and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the program.
const ApplicationName = "Gopherboy"

var number string

var (
	version  string
	revision string
)

// Version returns the version string and the revision. The bool is true if
// the version is a release number.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns the application name with the version and revision.
func String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	revision, version = fromBuildInfo(debug.ReadBuildInfo())
	if number != "" {
		version = number
	}
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) (rev string, ver string) {
	var vcs, modified bool

	if ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case modified:
		rev = rev + "+dirty"
	}

	if vcs {
		ver = "unreleased"
	} else {
		ver = "local"
	}

	return rev, ver
}
