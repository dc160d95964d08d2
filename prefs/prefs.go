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

// Package prefs facilitates the storage of preference values alongside their
// representation on disk.
//
// Preference values are typed (Bool, String, Int, Float) and safe to access
// concurrently. Values are grouped into a Disk instance which can save/load
// them to/from a single preferences file. Several Disk instances can share
// one file; saving merges with entries owned by other instances rather than
// clobbering them.
package prefs

import "fmt"

// Value represents the actual Go preference value.
type Value any

// all preference types must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// WarningBoilerPlate is the first line in a preferences file. Files without
// it will not be parsed.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a preferences file.
const keySep = " :: "
