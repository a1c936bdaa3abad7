// This file is part of Shmem800.
//
// Shmem800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shmem800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shmem800.  If not, see <https://www.gnu.org/licenses/>.

package akey_test

import (
	"testing"

	"github.com/jetsetilly/shmem800/akey"
	"github.com/jetsetilly/shmem800/test"
)

func TestNames(t *testing.T) {
	test.ExpectEquality(t, akey.KeycodeName(akey.Return), "RETURN")
	test.ExpectEquality(t, akey.KeycodeName(0x3f), "0x3f")
	test.ExpectEquality(t, akey.SpecialName(akey.ColdStart), "COLDSTART")
	test.ExpectEquality(t, akey.SpecialName(99), "special 99")

	k, ok := akey.LookupSpecial("WARMSTART")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, akey.WarmStart)
	_, ok = akey.LookupSpecial("NOTHING")
	test.ExpectFailure(t, ok)
}

func TestModifiers(t *testing.T) {
	// the clear key is the shifted form of the less-than key
	test.ExpectEquality(t, akey.Clear, 0x36|akey.Shift)
	test.ExpectEquality(t, akey.Shift|akey.Control, akey.ShiftCtrl)
}
