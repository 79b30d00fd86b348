// This file is part of ram16.
//
// ram16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ram16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ram16.  If not, see <https://www.gnu.org/licenses/>.

package bus

// AddressError is the error pattern returned by memory implementations
// when an access falls outside of addressable memory. The first value
// is the highest address the access would have touched and the second
// is the memory's capacity.
const AddressError = "address out of range: %#04x (capacity %d)"

// Memory defines the operations for a memory area as seen from the
// CPU, or from whatever else masters the bus.
//
// Every access is checked against the memory's capacity. For the
// 16-bit operations the check covers both bytes of the word, so an
// access starting at the last byte of memory fails. A failed store
// never writes anything.
//
// Sixteen-bit values are laid out low byte first: the low-order byte
// of the value at the quoted address and the high-order byte at the
// address above it.
type Memory interface {
	Load8(address uint16) (uint8, error)
	Load16(address uint16) (uint16, error)
	Store8(address uint16, value uint8) error
	Store16(address uint16, value uint16) error
}
