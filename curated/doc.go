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

// Package curated is a helper package for the plain Go language error
// type. Curated errors implement the error interface and can be used
// wherever a plain error can.
//
// Errors are created with the Errorf() function. It works like the
// Errorf() function in the fmt package except that the formatting
// pattern is also kept as the error's identity. Callers can then test
// for a specific error without comparing formatted strings:
//
//	e := curated.Errorf("ram: bad address %#04x", a)
//
//	if curated.Is(e, "ram: bad address %#04x") {
//		fmt.Println("true")
//	}
//
// The Has() function is the looser relative of Is(). It answers
// whether the pattern occurs anywhere in the error chain, rather than
// only at the outermost level. Wrapping one curated error in another
// simply means using it as a placeholder value:
//
//	f := curated.Errorf("vm: %v", e)
//
//	curated.Is(f, "ram: bad address %#04x")   -> false
//	curated.Has(f, "ram: bad address %#04x")  -> true
//
// The IsAny() function says whether an error is curated at all. It is
// useful at the boundary with foreign code, where an uncurated error
// usually means something unexpected has happened.
//
// Finally, the Error() implementation normalises the message built
// from a chain of curated errors, removing adjacent duplicate parts.
// This means functions can wrap and return errors freely without the
// final message stuttering.
package curated
