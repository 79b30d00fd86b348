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

// Package ram implements a fixed-capacity, bounds-checked area of
// randomly accessible memory, suitable for sitting behind the memory
// bus of an emulated machine. The capacity is fixed at construction
// and every byte starts out as zero.
//
// Access is through 8-bit and 16-bit loads and stores. An access whose
// highest touched address is not inside the memory area fails with the
// bus.AddressError pattern before anything has been written. There is
// no clamping, wrapping or growing.
//
// A note on byte order: 16-bit values are stored with the low-order
// byte at the lower address and the high-order byte at the address
// above it. Documentation for some of the machines this layout comes
// from describes it as big-endian but the byte placement is the
// little-endian convention. The placement, not the label, is the
// contract; changing it would break anything that mixes 8-bit and
// 16-bit access to the same addresses.
//
// The package performs no synchronisation of its own. If a RAM
// instance is shared between goroutines the owner must serialise
// access to it.
package ram
