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
	"fmt"
	"strconv"
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
)

// return the height of the window from the current cursor position to the end
// of the window frame. useful for calculating scroll areas for windows with a
// static header.
func imguiRemainingWinHeight() float32 {
	return imgui.WindowHeight() - imgui.CursorPosY() - imgui.CurrentStyle().FramePadding().Y*2 - imgui.CurrentStyle().ItemInnerSpacing().Y
}

// return the width of the window from the current cursor position to the edge
// of the window frame. subtracts padding and spacing from the edge to make it
// suitable for sizing buttons etc.
func imguiRemainingWinWidth() float32 {
	w := imgui.WindowWidth() - imgui.CursorPosX()
	w -= imgui.CurrentStyle().FramePadding().X + imgui.CurrentStyle().ItemInnerSpacing().X
	return w
}

// divide remaining win width by n taking into account spacing between
// widgets. useful for cheap tabulation of buttons.
func imguiDivideWinWidth(n int) float32 {
	w := imguiRemainingWinWidth() / float32(n)
	w -= imgui.CurrentStyle().FramePadding().X
	return w
}

// returns the minimum Vec2{} required to fit any of the string values listed
// in the arguments.
func imguiGetFrameDim(s string, t ...string) imgui.Vec2 {
	w := imgui.CalcTextSize(s, false, 0)
	for i := range t {
		y := imgui.CalcTextSize(t[i], false, 0)
		if y.X > w.X {
			w = y
		}
	}

	w.Y = imgui.FontSize() + (imgui.CurrentStyle().FramePadding().Y * 2.5)

	// comboboxes in particular look better with a small amount of trailing space
	w.X += imgui.CurrentStyle().FramePadding().X * 2.5

	return w
}

// returns the pixel width of a text string length characters wide. assumes all
// characters are of the same width. Uses the 'X' character for measurement.
func imguiTextWidth(length int) float32 {
	if length < 1 {
		return 0
	}
	return imguiGetFrameDim(strings.Repeat("X", length)).X
}

// draw toggle button at current cursor position. returns true if toggle has
// been clicked.
func imguiToggleButton(id string, v bool, col imgui.Vec4) bool {
	height := imgui.FrameHeight() * 0.75
	width := height * 1.55
	radius := height * 0.50
	t := float32(0.0)
	if v {
		t = 1.0
	}

	bg := imgui.PackedColorFromVec4(col)
	p := imgui.CursorScreenPos().Plus(imgui.Vec2{X: 0, Y: (imgui.FrameHeight() / 2) - (height / 2)})
	dl := imgui.WindowDrawList()

	r := false

	imgui.InvisibleButtonV(id, imgui.Vec2{width, height}, imgui.ButtonFlagsMouseButtonLeft)
	if imgui.IsItemClicked() {
		r = true
	}

	dl.AddRectFilledV(p, imgui.Vec2{p.X + width, p.Y + height}, bg, radius, imgui.DrawCornerFlagsAll)
	dl.AddCircleFilled(imgui.Vec2{p.X + radius + t*(width-radius*2.0), p.Y + radius},
		radius-1.5, imgui.PackedColorFromVec4(imgui.Vec4{1.0, 1.0, 1.0, 1.0}))

	return r
}

// imguiBooleanButton adds a button of either one of two colors, depending on
// the state boolean.
func imguiBooleanButton(trueCol imgui.Vec4, falseCol imgui.Vec4, state bool, text string, dim imgui.Vec2) bool {
	if state {
		imgui.PushStyleColor(imgui.StyleColorButton, trueCol)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, trueCol)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, trueCol)
	} else {
		imgui.PushStyleColor(imgui.StyleColorButton, falseCol)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, falseCol)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, falseCol)
	}
	defer imgui.PopStyleColorV(3)
	return imgui.ButtonV(text, dim)
}

// imguiLabel aligns text with widget borders and positions cursor so next
// widget will follow the label. where a label parameter is required by a
// widget and you do not want it to appear, preferring the label given by
// imguiLabel(), you can use the empty string or use the double hash construct.
// For example
//
//	imgui.SliderInt("##foo", &v, s, e)
//	imguiLabel("My Slider")
func imguiLabel(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
	imgui.SameLine()
}

// imguiLabelEnd is the same imguiLabel but without the instruction to put the
// next widget on the same line.
func imguiLabelEnd(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
}

// pads imgui.Separator with additional spacing.
func imguiSeparator() {
	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()
}

// shows the result of the supplied function in a tooltip. the hoverTest
// argument says whether the function should test whether the last item is
// being hovered over before showing the tooltip.
func imguiTooltip(f func(), hoverTest bool) {
	if !hoverTest || imgui.IsItemHovered() {
		imgui.BeginTooltip()
		f()
		imgui.EndTooltip()
	}
}

// imguiTooltipSimple is a single text string version of imguiTooltip. the
// hover test is always performed.
func imguiTooltipSimple(s string) {
	imguiTooltip(func() {
		imgui.Text(s)
	}, true)
}

// draw grid of bytes with before and after functions in addition to commit
// function.
func drawByteGrid(id string, data []uint8, origin uint16,
	before func(idx int), after func(idx int), commit func(idx int, value uint8)) {

	// the origin and memtop as a string
	originString := fmt.Sprintf("%04x", origin)
	memtopString := fmt.Sprintf("%04x", origin+uint16(len(data)-1))

	// find first non-matching digit of origin and memtop strings
	columnCrop := 0
	for i := 0; i < len(originString); i++ {
		if originString[i] != memtopString[i] {
			columnCrop = i
			break // for loop
		}
	}

	// the width of the row heading column
	rowHeadingWidth := len(originString) - columnCrop

	spacing := imgui.Vec2{X: 0.5, Y: 0.5}
	imgui.PushStyleVarVec2(imgui.StyleVarCellPadding, spacing)
	defer imgui.PopStyleVar()

	const numColumns = 16

	flgs := imgui.TableFlagsSizingFixedFit

	if imgui.BeginTableV(id, numColumns+1, flgs, imgui.Vec2{}, 0.0) {
		// in some situations we will return early from the drawByteGrid()
		// function so we want to make sure that EndTable() is called
		defer imgui.EndTable()

		imgui.TableSetupScrollFreeze(0, 1)

		// set up columns
		width := imguiTextWidth(rowHeadingWidth)
		imgui.TableSetupColumnV(fmt.Sprintf("%p_column0", data), imgui.TableColumnFlagsNone, width, 0)
		width = imguiTextWidth(2)
		for i := 1; i < numColumns+1; i++ {
			imgui.TableSetupColumnV(fmt.Sprintf("%p_column%d", data, i), imgui.TableColumnFlagsNone, width, 0)
		}

		// header row
		imgui.TableNextRow()

		// skip first column of the header row
		imgui.TableNextColumn()

		// try to center header with the text in the column
		leftPad := imgui.CurrentStyle().FramePadding().X

		// draw headers for each column
		for i := 0; i < numColumns; i++ {
			imgui.TableNextColumn()
			pos := imgui.CursorPos()
			pos.X += leftPad
			imgui.SetCursorPos(pos)
			imgui.Text(fmt.Sprintf("-%x", i))
		}

		// simple way of creating a gap to the main body of the table
		imgui.TableNextRow()
		imgui.TableNextRow()

		// the number of leading columns is the number of empty columns on the
		// first row. we need to account for these when calculating the clipper
		// length and when setting the idx and address values at the start of
		// every row
		leadingColumns := int(origin) % numColumns

		// first row requires special handling in order to account for blank
		// columns on the first row
		firstRow := true

		// clipper length is divided by the number of columns and is used to
		// tell the ListClipper how much data to expect. we add numColumns to
		// make sure we include the last line which may be an incomplete row.
		// this strategy requires a check that idx does not exceed the actual
		// length of the data
		clipperLen := len(data) + numColumns + leadingColumns - 1

		var clipper imgui.ListClipper
		clipper.Begin(clipperLen / numColumns)

		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				idx := (i * numColumns) - leadingColumns
				addr := origin + uint16(idx)

				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.AlignTextToFramePadding()
				imgui.Text(fmt.Sprintf("%04x-", addr/16)[columnCrop+1:])

				// column limit for row changes depending on the requirements
				// of the first row
				columnLimitForRow := numColumns

				// add blank columns to first row as necessary
				if firstRow {
					for j := 0; j < leadingColumns; j++ {
						imgui.TableNextColumn()
						idx++
						addr++
					}
					columnLimitForRow -= leadingColumns
					firstRow = false
				}

				for j := 0; j < columnLimitForRow; j++ {
					// check that idx hasn't gone beyond the end of data
					if idx >= len(data) {
						break
					}

					imgui.TableNextColumn()

					if before != nil {
						before(idx)
					}

					// editable byte
					b := data[idx]

					s := fmt.Sprintf("%02x", b)
					if imguiHexInput(fmt.Sprintf("%s##%04x", id, addr), 2, &s) {
						if v, err := strconv.ParseUint(s, 16, 8); err == nil {
							commit(idx, uint8(v))
						}
					}

					if after != nil {
						after(idx)
					}

					// advance idx and addr by one
					idx++
					addr++
				}
			}
		}
	}
}
