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

//go:build !windows

package colorterm

import (
	"bufio"
	"io"
)

// readRune is the return value of bufio.ReadRune() bundled into a single
// struct so that it can be sent over a channel.
type readRune struct {
	r   rune
	sz  int
	err error
}

// runeReader presents user input as a channel of readRune. converting input
// to a channel means the TermRead() loop can multiplex input with other
// events. the channel is buffered so that TermReadCheck() can test for
// pending input without consuming it.
type runeReader chan readRune

func initRuneReader(reader io.Reader) runeReader {
	bufReader := bufio.NewReader(reader)

	rr := make(runeReader, 1)

	go func() {
		for {
			r, sz, err := bufReader.ReadRune()
			rr <- readRune{r: r, sz: sz, err: err}
			if err != nil {
				return
			}
		}
	}()

	return rr
}
