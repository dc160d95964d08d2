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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions test a value against an expected condition or value
// and mark the test as having failed if the expectation is not met. The
// Demand functions do the same but are fatal to the test on failure. Demand
// is useful when a failed expectation makes the remainder of the test
// meaningless - for example, the length of a slice that is iterated over in
// later comparisons.
//
// It is worth describing how the Expect functions handle the nil type because
// it is not obvious. The nil type is considered a success. This is because of
// how errors are usually returned (nil indicating no error). Consequently nil
// will cause ExpectFailure to fail and ExpectSuccess to succeed.
//
// The CompareWriter type implements the io.Writer interface and can be used
// to capture output for comparison with an expected string.
package test
