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

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"
)

// SetFeature implements the gui.GUI interface.
func (img *SdlImgui) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (rerr error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			rerr = fmt.Errorf("sdlimgui: %s: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetPlaymode:
		img.setPlaymode(args[0].(bool))

	case gui.ReqSetScale:
		return img.prefs.scale.Set(float64(args[0].(float32)))

	case gui.ReqFullScreen:
		return img.prefs.fullScreen.Set(args[0].(bool))

	case gui.ReqMuteAudio:
		return img.prefs.audioMute.Set(args[0].(bool))

	case gui.ReqSavePrefs:
		img.savePrefs()

	default:
		return fmt.Errorf("%w: %s", gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// SetFeatureNoError implements the gui.GUI interface.
func (img *SdlImgui) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	if err := img.SetFeature(request, args...); err != nil {
		logger.Logf(logger.Allow, "sdlimgui", "set feature %s: %v", request, err)
	}
}

// GetFeature implements the gui.GUI interface.
func (img *SdlImgui) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	switch request {
	case gui.ReqSetPlaymode:
		return img.isPlaymode(), nil

	case gui.ReqSetScale:
		return float32(img.prefs.scale.Get().(float64)), nil

	case gui.ReqFullScreen:
		return img.prefs.fullScreen.Get().(bool), nil

	case gui.ReqMuteAudio:
		return img.prefs.audioMute.Get().(bool), nil
	}

	return nil, fmt.Errorf("%w: %s", gui.UnsupportedGuiFeature, request)
}
