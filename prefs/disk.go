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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Disk represents preference values as stored on disk. Each value is added
// with a unique key. Keys must not contain the key separator sequence.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to Disk under the supplied key.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(keySep)) {
		return fmt.Errorf("prefs: key contains illegal sequence (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// HasEntry returns true if the preferences file on disk contains the key.
// Useful for deciding whether a Load() will find anything.
func (dsk *Disk) HasEntry(key string) (bool, error) {
	onDisk, err := dsk.readFile()
	if err != nil {
		return false, err
	}
	_, ok := onDisk[key]
	return ok, nil
}

// read existing preferences file into a key/value map. a missing file is not
// an error, it is an empty map.
func (dsk *Disk) readFile() (map[string]string, error) {
	onDisk := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return onDisk, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid preferences file (%s)", dsk.path)
	}

	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			return nil, fmt.Errorf("prefs: malformed preferences file (%s)", dsk.path)
		}
		onDisk[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return onDisk, nil
}

// Save current preference values to disk. Keys in the file that belong to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	onDisk, err := dsk.readFile()
	if err != nil {
		return err
	}

	// overlay live values
	for key, p := range dsk.entries {
		onDisk[key] = p.String()
	}

	keys := make([]string, 0, len(onDisk))
	for key := range onDisk {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, onDisk[key]))
	}

	if _, err := f.WriteString(s.String()); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values in the file that have no
// corresponding entry in the Disk instance are ignored. If saveOnError is
// true then an error while setting a value triggers a Save(), writing the
// live values back out.
func (dsk *Disk) Load(saveOnError bool) error {
	onDisk, err := dsk.readFile()
	if err != nil {
		return err
	}

	for key, value := range onDisk {
		if p, ok := dsk.entries[key]; ok {
			if err := p.Set(value); err != nil {
				if saveOnError {
					return dsk.Save()
				}
				return err
			}
		}
	}

	return nil
}

// Reset all preference values in the Disk instance to their zero state. The
// file on disk is not touched.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
