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
	"image"
	"image/png"
	"os"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/resources/unique"
)

// the machine display is very small so screenshots are enlarged by a whole
// number factor
const screenshotScale = 8

func (img *SdlImgui) screenshot() {
	pixels := scalePixels(img.screen.copyPixels(), screenshotScale)
	path := fmt.Sprintf("%s.png", unique.Filename("screenshot", img.dbg.LastBuild().Name))
	savePNG(pixels, path)
}

func scalePixels(src *image.RGBA, factor int) *image.RGBA {
	sz := src.Bounds().Size()
	dst := image.NewRGBA(image.Rect(0, 0, sz.X*factor, sz.Y*factor))

	for y := 0; y < sz.Y*factor; y++ {
		for x := 0; x < sz.X*factor; x++ {
			dst.SetRGBA(x, y, src.RGBAAt(x/factor, y/factor))
		}
	}

	return dst
}

// savePNG writes the image to the specified path.
func savePNG(rgba *image.RGBA, path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	err = png.Encode(f, rgba)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		_ = f.Close()
		return
	}

	err = f.Close()
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	// indicate success
	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
}
