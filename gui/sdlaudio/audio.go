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

// Package sdlaudio plays the beeper output of the machine through SDL.
package sdlaudio

import (
	"fmt"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length is important to get right. we don't want it to be long
// because we can introduce unnecessary lag between the beeper and the rest of
// the emulation; by the same token we don't want it too short because we will
// end up queueing audio too often.
//
// the following value has been discovered through trial and error. the precise
// value is not critical.
const bufferLength = 512

// the amount of queued audio allowed to accumulate before buffers are dropped
// rather than queued. the machine can be ticked much faster than realtime, at
// which point samples arrive faster than the device can play them.
const maxQueuedBytes = bufferLength * 4

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer   []uint8
	bufferCt int

	muted bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{
		buffer: make([]uint8, bufferLength),
	}

	spec := &sdl.AudioSpec{
		Freq:     chip8.AudioSampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Mute silences the beeper. The mixer continues to consume samples while
// muted.
func (aud *Audio) Mute(muted bool) {
	if muted == aud.muted {
		return
	}
	aud.muted = muted

	if muted {
		sdl.ClearQueuedAudio(aud.id)
	}
}

// SetAudio implements the chip8.AudioMixer interface.
func (aud *Audio) SetAudio(sample uint8) error {
	aud.buffer[aud.bufferCt] = sample + aud.spec.Silence
	aud.bufferCt++

	if aud.bufferCt >= len(aud.buffer) {
		return aud.flushAudio()
	}

	return nil
}

func (aud *Audio) flushAudio() error {
	aud.bufferCt = 0

	if aud.muted {
		return nil
	}

	// the emulation is running ahead of the sound device. dropping the
	// buffer bounds the latency
	if sdl.GetQueuedAudioSize(aud.id) > maxQueuedBytes {
		return nil
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return fmt.Errorf("sdlaudio: %w", err)
	}

	return nil
}

// EndMixing implements the chip8.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	defer sdl.CloseAudioDevice(aud.id)
	return aud.flushAudio()
}
