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
	"image"

	"github.com/jetsetilly/gopher8/chip8"
)

// screen holds the machine display as an RGBA image and the texture it is
// written to. the image is shared by the playmode screen and the display
// window in the debugger.
type screen struct {
	img *SdlImgui

	// the machine display expressed with the preferred pixel colors
	pixels *image.RGBA

	// texture the pixels are written to at the start of every render pass
	texture *gl21Texture
}

func newScreen(img *SdlImgui) *screen {
	return &screen{
		img:    img,
		pixels: image.NewRGBA(image.Rect(0, 0, chip8.ScreenWidth, chip8.ScreenHeight)),
	}
}

// createTexture is called after the renderer has started.
func (scr *screen) createTexture() {
	// nearest-pixel filtering. the display will almost always be drawn much
	// larger than its 64x32 resolution and we want sharp pixel boundaries
	scr.texture = scr.img.rnd.addTexture(false, true)
}

// render copies the machine framebuffer into the RGBA image and updates the
// texture. called from renderFrame() so that the texture update happens with
// the GL context current.
func (scr *screen) render() {
	on := scr.img.cols.PixelOn
	off := scr.img.cols.PixelOff

	fb := &scr.img.dbg.Mach().Framebuffer

	var i int
	for _, p := range fb {
		c := off
		if p != 0 {
			c = on
		}
		scr.pixels.Pix[i] = uint8(c.X * 255.0)
		scr.pixels.Pix[i+1] = uint8(c.Y * 255.0)
		scr.pixels.Pix[i+2] = uint8(c.Z * 255.0)
		scr.pixels.Pix[i+3] = 255
		i += 4
	}

	scr.texture.render(scr.pixels)
}

// copyPixels returns a copy of the current pixels. used when saving
// screenshots.
func (scr *screen) copyPixels() *image.RGBA {
	cpy := image.NewRGBA(scr.pixels.Bounds())
	copy(cpy.Pix, scr.pixels.Pix)
	return cpy
}
