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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

// Sentinal error patterns for the cartridgeloader package.
const (
	LoadError       = "cartridgeloader: %v"
	UnexpectedHash  = "cartridgeloader: unexpected hash value"
	UnsupportedURL  = "cartridgeloader: unsupported URL scheme (%s)"
	UnsupportedFile = "cartridgeloader: unsupported file extension (%s)"
)

// Loader is used to specify the ROM image to load into the machine.
type Loader struct {
	// filename of ROM image to load
	Filename string

	// filename of the battery save. empty string indicates that the
	// cartridge will not be saved
	SaveFilename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".GBC", ".GB", ".CGB", ".BIN", ".ROM"}

// NewLoader is the preferred method of initialisation for the Loader type.
// The SaveFilename field is set to the ROM filename with the extension
// replaced with ".sav". For remote files the save file is placed in the
// current directory.
func NewLoader(filename string) (Loader, error) {
	cl := Loader{
		Filename: filename,
	}

	ext := strings.ToUpper(filepath.Ext(filename))
	ok := false
	for _, e := range FileExtensions {
		if ext == e {
			ok = true
			break
		}
	}
	if !ok {
		return cl, curated.Errorf(UnsupportedFile, ext)
	}

	if isRemote(filename) {
		cl.SaveFilename = cl.ShortName() + ".sav"
	} else {
		cl.SaveFilename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".sav"
	}

	return cl, nil
}

func isRemote(filename string) bool {
	u, err := url.Parse(filename)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	name := filepath.Base(cl.Filename)
	return strings.TrimSuffix(name, filepath.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		var err error
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(UnsupportedURL, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash)
	}
	cl.Hash = hash

	return nil
}
