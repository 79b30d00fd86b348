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

package test

import (
	"testing"
)

// Equate is used to test equality between one value and another.
// Generally, both values must be of the same type but if value is of
// type uint8 or uint16 then expectedValue may be an int. The reason
// for this is that a literal number is of type int and it is
// convenient to write:
//
//	var v uint16
//	v = someFunction()
//	test.Equate(t, v, 10)
//
// without having to cast the expected number.
//
// This is by no means a comprehensive comparison function. It handles
// only the types the tests in this module actually use.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for Equate() function (%T)", v)

	case uint8:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint8(ev) {
				t.Errorf("equation of type %T failed (%#02x - wanted %#02x)", v, v, ev)
			}
		case uint8:
			if v != ev {
				t.Errorf("equation of type %T failed (%#02x - wanted %#02x)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case uint16:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint16(ev) {
				t.Errorf("equation of type %T failed (%#04x - wanted %#04x)", v, v, ev)
			}
		case uint16:
			if v != ev {
				t.Errorf("equation of type %T failed (%#04x - wanted %#04x)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case int:
		switch ev := expectedValue.(type) {
		case int:
			if v != ev {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, ev)
		}

	case string:
		switch ev := expectedValue.(type) {
		case string:
			if v != ev {
				t.Errorf("equation of type %T failed (%s - wanted %s)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, ev)
		}

	case bool:
		switch ev := expectedValue.(type) {
		case bool:
			if v != ev {
				t.Errorf("equation of type %T failed (%v - wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, ev)
		}
	}
}
