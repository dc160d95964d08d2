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

package gui

// FeatureReq is used to request the setting of a gui attribute, toggling the
// full-screen state for example.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. Argument must be of the type specified or
// else the interface{} type conversion will fail and the application will
// probably crash.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending on other conditions in the GUI.
const (
	// whether the gui should be in playmode. when false the gui presents the
	// debugging windows.
	ReqSetPlaymode FeatureReq = "ReqSetPlaymode" // bool

	// the scaling of the machine display. the scale value is the number of
	// screen pixels per machine pixel.
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// put gui output into full-screen mode (ie. no window border and content
	// the size of the monitor).
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// whether audio output is muted.
	ReqMuteAudio FeatureReq = "ReqMuteAudio" // bool

	// save the gui preferences to disk. no argument.
	ReqSavePrefs FeatureReq = "ReqSavePrefs"
)
