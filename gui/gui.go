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

// Package gui defines the relationship between the debugger and the user
// interface. The GUI interface is the mechanism by which the non-GUI parts of
// the program request changes to the user interface.
//
// Implementations are not required to support every feature request. An
// unsupported request should return UnsupportedGuiFeature so that the caller
// can decide whether the absence is an error.
package gui

import (
	"errors"
)

// UnsupportedGuiFeature is returned by SetFeature() if the implementation
// does not support the requested feature.
var UnsupportedGuiFeature = errors.New("unsupported gui feature")

// GUI defines the operations that can be performed on graphical user
// interfaces.
type GUI interface {
	// Send a request to set a GUI feature
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// SetFeatureNoError is the same as SetFeature() but any error is logged
	// rather than returned
	SetFeatureNoError(request FeatureReq, args ...FeatureReqData)

	// Return current state of GUI feature
	GetFeature(request FeatureReq) (FeatureReqData, error)
}

// Stub is an implementation of the GUI interface that does nothing. It is
// used when the program is running without a graphical interface, in the
// terminal-only debugger for example.
type Stub struct{}

// SetFeature implements the GUI interface.
func (s Stub) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	return nil
}

// SetFeatureNoError implements the GUI interface.
func (s Stub) SetFeatureNoError(request FeatureReq, args ...FeatureReqData) {
}

// GetFeature implements the GUI interface.
func (s Stub) GetFeature(request FeatureReq) (FeatureReqData, error) {
	return nil, UnsupportedGuiFeature
}
