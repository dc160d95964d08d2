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

package sdlimgui

import (
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
)

// calls imguiInput with the string of allowed hexadecimal characters.
func imguiHexInput(label string, digits int, content *string) bool {
	return imguiInput(label, digits, content, "abcdefABCDEF0123456789")
}

// input text that accepts a maximum number of digits. physical width of the
// InputText should be controlled with PushItemWidth()/PopItemWidth() as
// normal. returns true when the enter key is pressed.
func imguiInput(label string, digits int, content *string, allowedChars string) bool {
	cb := func(d imgui.InputTextCallbackData) int32 {
		switch d.EventFlag() {
		case imgui.InputTextFlagsCallbackCharFilter:
			// filter characters that are not in the list of allowedChars
			if !strings.ContainsAny(string(d.EventChar()), allowedChars) {
				return -1
			}
		default:
			// restrict length of input to the requested number of digits
			b := string(d.Buffer())
			if len(b) > digits {
				d.DeleteBytes(0, len(b))
				b = b[:digits]
				d.InsertBytes(0, []byte(b))
				d.MarkBufferModified()
			}
		}

		return 0
	}

	// not using InputTextFlagsCharsHexadecimal and preferring to filter
	// manually for greater flexibility
	flags := imgui.InputTextFlagsCallbackCharFilter |
		imgui.InputTextFlagsCallbackAlways |
		imgui.InputTextFlagsAutoSelectAll |
		imgui.InputTextFlagsEnterReturnsTrue

	return imgui.InputTextV(label, content, flags, cb)
}
