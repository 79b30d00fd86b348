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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface. the
// formatting pattern doubles as the error's identity.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error.
//
// The first argument is named "pattern" rather than "format" because
// it is kept with the error and used by the Is() and Has() functions
// to identify it. Formatting of the message is deferred until Error()
// is called.
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation is the
// removal of adjacent duplicate parts from the message chain. It does
// not affect letter-case or white space.
//
// Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	// de-duplicate adjacent message parts
	p := strings.Split(s, ": ")
	n := p[:1]
	for _, q := range p[1:] {
		if q != n[len(n)-1] {
			n = append(n, q)
		}
	}

	return strings.Join(n, ": ")
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(curated)

	return ok
}

// Is checks if the error is a curated error with the specified
// pattern. A wrapped occurrence of the pattern deeper in the chain is
// not enough; use Has() for that.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if the error is a curated error with the specified
// pattern anywhere in its chain.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
