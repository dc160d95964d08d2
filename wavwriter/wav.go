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

// Package wavwriter records the beeper output of the machine to disk as a
// WAV file. Note that audio data is buffered in memory in its entirety and
// written to disk on EndMixing(). It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/logger"
)

// WavWriter implements the chip8.AudioMixer interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, chip8.AudioSampleFreq),
	}
}

// SetAudio implements the chip8.AudioMixer interface.
func (aw *WavWriter) SetAudio(sample uint8) error {
	aw.buffer = append(aw.buffer, int(sample))
	return nil
}

// EndMixing implements the chip8.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	// audio format 1 means PCM
	enc := wav.NewEncoder(f, chip8.AudioSampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  chip8.AudioSampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d samples written to %s", len(aw.buffer), aw.filename)

	return nil
}
