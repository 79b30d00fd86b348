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

// Package bus defines how memory is accessed from the rest of an
// emulated machine. The bus has nothing to do with real hardware; it
// is purely conceptual and is implemented through a Go interface.
//
// A CPU core (or anything else that masters the bus) should depend on
// the Memory interface and not on a concrete memory type. The ram
// package provides the canonical implementation.
//
// Because loads through this bus have no side effects there is no need
// for the separate debugger-facing bus that machines with registers
// mapped into the address space require. Peeking at memory is the same
// operation as loading from it.
package bus
