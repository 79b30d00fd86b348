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

package curated_test

import (
	"errors"
	"testing"

	"github.com/ferrith/ram16/curated"
	"github.com/ferrith/ram16/test"
)

const (
	testPattern = "test: value = %d"
	wrapPattern = "fatal: %v"
)

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)

	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, testPattern), true)
	test.Equate(t, curated.Is(e, wrapPattern), false)

	// wrapping buries the pattern one level down. Is() no longer
	// matches it but Has() does
	f := curated.Errorf(wrapPattern, e)
	test.Equate(t, curated.Is(f, testPattern), false)
	test.Equate(t, curated.Is(f, wrapPattern), true)
	test.Equate(t, curated.Has(f, testPattern), true)
	test.Equate(t, curated.Has(f, wrapPattern), true)
}

func TestUncurated(t *testing.T) {
	e := errors.New("plain error")

	test.Equate(t, curated.IsAny(e), false)
	test.Equate(t, curated.Is(e, testPattern), false)
	test.Equate(t, curated.Has(e, testPattern), false)

	test.Equate(t, curated.IsAny(nil), false)
	test.Equate(t, curated.Is(nil, testPattern), false)
	test.Equate(t, curated.Has(nil, testPattern), false)
}

func TestNormalisation(t *testing.T) {
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", curated.Errorf("inner")))

	// adjacent duplicate parts appear only once in the message
	test.Equate(t, e.Error(), "error: inner")
}
