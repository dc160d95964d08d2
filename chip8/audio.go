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

package chip8

// AudioSampleFreq is the number of audio samples generated by the machine
// every second, assuming Tick() is being called at ClockHz.
const AudioSampleFreq = 12000

// Samples generated on every call to Tick().
const samplesPerTick = AudioSampleFreq / ClockHz

// The beeper is a plain square wave. There is only one tone so the frequency
// is baked in.
const (
	beepFreq   = 500
	halfPeriod = AudioSampleFreq / beepFreq / 2
	beepLevel  = 0x40
)

// AudioMixer implementations play or record the audio generated by the
// machine. The SetAudio() function receives one unsigned 8bit sample at a
// time. EndMixing() is called when the audio stream is finished with.
type AudioMixer interface {
	SetAudio(sample uint8) error
	EndMixing() error
}

// AttachAudio connects an AudioMixer to the machine. Samples are generated
// on every Tick(), silence included. A value of nil detaches any existing
// mixer, without calling EndMixing().
func (c8 *Chip8) AttachAudio(mixer AudioMixer) {
	c8.mixer = mixer
	c8.audioPhase = 0
}

// mix generates one tick's worth of beeper samples. The beep sounds for as
// long as the sound timer is above zero.
func (c8 *Chip8) mix() error {
	if c8.mixer == nil {
		return nil
	}

	for i := 0; i < samplesPerTick; i++ {
		var sample uint8
		if c8.SoundTimer > 0 && c8.audioPhase < halfPeriod {
			sample = beepLevel
		}
		c8.audioPhase = (c8.audioPhase + 1) % (halfPeriod * 2)

		if err := c8.mixer.SetAudio(sample); err != nil {
			return err
		}
	}

	return nil
}
