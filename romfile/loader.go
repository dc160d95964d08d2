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

// Package romfile is how programs enter the emulator from the outside
// world. A Loader names a program file, fetches its contents from the local
// filesystem or over HTTP, and classifies it as a ROM binary or as source
// for the build pipeline.
package romfile

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

// ROMExtension is the canonical file extension for CHIP-8 binaries. It is
// only a naming convention: any file without a source extension is treated
// as a binary, .rom and .bin being common alternatives.
const ROMExtension = ".ch8"

// SourceExtensions is the list of file extensions treated as source for the
// build pipeline.
var SourceExtensions = [...]string{".c8"}

// Loader names a program file and, once Load()ed, holds its contents.
type Loader struct {
	// filename or URL of the program
	Filename string

	// expected hash of the file. the empty string indicates that the hash
	// is unknown and need not be validated. after a successful load the
	// field holds the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() are no-ops once
	// this is populated
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// IsSource returns true if the file extension indicates program source
// rather than a ROM binary. Extension matching is case insensitive.
func (ld Loader) IsSource() bool {
	ext := strings.ToLower(path.Ext(ld.Filename))
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ShortName returns the filename without its path or extension.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Filenames with a URL scheme are fetched with that
// method; currently supported schemes are HTTP and HTTPS. Anything else is
// read from the local filesystem.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return fmt.Errorf("romfile: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("romfile: %s: %s", ld.Filename, resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("romfile: %w", err)
		}

	case "file", "":
		var err error
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return fmt.Errorf("romfile: %w", err)
		}

	default:
		return fmt.Errorf("romfile: unsupported URL scheme (%s)", scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return fmt.Errorf("romfile: unexpected hash value")
	}
	ld.Hash = hash

	return nil
}
