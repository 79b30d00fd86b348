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

package ram

import (
	"fmt"
	"strings"

	"github.com/ferrith/ram16/bus"
	"github.com/ferrith/ram16/curated"
)

// RAM is a fixed-capacity area of randomly accessible memory. It
// implements the bus.Memory interface.
type RAM struct {
	memory []uint8
}

// New is the preferred method of initialisation for the RAM type. The
// capacity argument fixes the number of addressable bytes for the
// lifetime of the instance. Every byte is zero to begin with.
//
// Addresses are 16 bits wide. Capacity beyond 0x10000 bytes can only
// be reached by the tail end of a multi-byte operation that begins at
// a 16-bit address; it can never be the base of an access.
func New(capacity uint32) *RAM {
	ram := &RAM{}

	// the backing memory is allocated once and never resized or
	// handed out
	ram.memory = make([]uint8, capacity)

	return ram
}

// Capacity returns the number of addressable bytes, as fixed at
// construction.
func (ram *RAM) Capacity() int {
	return len(ram.memory)
}

// check takes the highest address an access will touch and fails if
// that address is not inside the memory area. the argument is an int
// rather than a uint16 so that an access crossing the top of the
// address space cannot wrap around and pass the check.
func (ram *RAM) check(highest int) error {
	if highest >= len(ram.memory) {
		return curated.Errorf(bus.AddressError, highest, len(ram.memory))
	}
	return nil
}

// Load8 is an implementation of the bus.Memory interface.
func (ram *RAM) Load8(address uint16) (uint8, error) {
	if err := ram.check(int(address)); err != nil {
		return 0, err
	}
	return ram.memory[address], nil
}

// Load16 is an implementation of the bus.Memory interface.
//
// The byte at the higher address forms the high-order byte of the
// result, mirroring the layout written by Store16().
func (ram *RAM) Load16(address uint16) (uint16, error) {
	if err := ram.check(int(address) + 1); err != nil {
		return 0, err
	}

	// the index is widened, like the bounds check, so that a load at
	// the top of the address space reaches past 0xffff instead of
	// wrapping to address zero
	v := uint16(ram.memory[int(address)+1])
	return (v << 8) | uint16(ram.memory[address]), nil
}

// Store8 is an implementation of the bus.Memory interface.
func (ram *RAM) Store8(address uint16, value uint8) error {
	if err := ram.check(int(address)); err != nil {
		return err
	}
	ram.memory[address] = value
	return nil
}

// Store16 is an implementation of the bus.Memory interface.
//
// The word is checked against the address of its second byte before
// either byte is written, so a failed store leaves memory untouched.
func (ram *RAM) Store16(address uint16, value uint16) error {
	if err := ram.check(int(address) + 1); err != nil {
		return err
	}

	// low byte at the quoted address
	b := uint8(value)
	ram.memory[address] = b

	// high byte at the address above it. widened for the same reason
	// as the bounds check: a store at the top of the address space
	// must not wrap to address zero
	b = uint8(value >> 8)
	ram.memory[int(address)+1] = b

	return nil
}

// StoreBytes copies data into memory starting at address. Useful for
// loading a program image before handing the memory to a CPU core.
//
// The bounds check covers the whole run before anything is written, so
// a failed copy leaves memory untouched. Copying no bytes always
// succeeds.
func (ram *RAM) StoreBytes(address uint16, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	if err := ram.check(int(address) + len(data) - 1); err != nil {
		return err
	}

	copy(ram.memory[int(address):int(address)+len(data)], data)

	return nil
}

// String returns a hex dump of the entire memory area, sixteen bytes
// to a row.
func (ram *RAM) String() string {
	s := strings.Builder{}
	for base := 0; base < len(ram.memory); base += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", base))
		for a := base; a < base+16 && a < len(ram.memory); a++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[a]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}
