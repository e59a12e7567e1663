/*
Copyright © 2026 the soilstress authors.
This file is part of soilstress.

soilstress is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

soilstress is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with soilstress.  If not, see <http://www.gnu.org/licenses/>.
*/

package soilstress

import (
	"math"
	"testing"

	"github.com/ctessum/unit"
)

func TestPotentialFactorUnits(t *testing.T) {
	linear, err := NewLinearPotentialDependence(-300, -100)
	if err != nil {
		t.Fatal(err)
	}

	// -200 kPa sits halfway up the linear ramp regardless of the tag
	// it arrives with.
	for _, swp := range []*unit.Unit{
		Kilopascals(-200),
		Pascals(-200e3),
		Megapascals(-0.2),
	} {
		f, err := PotentialFactorUnits(linear, swp)
		if err != nil {
			t.Fatal(err)
		}
		if different(f, 0.5, testTolerance) {
			t.Errorf("swp=%v: factor=%g, want 0.5", swp, f)
		}
	}

	// The Zhou variant expects MPa.
	zhou := NewZhouPotentialDependence()
	f, err := PotentialFactorUnits(zhou, Megapascals(-1))
	if err != nil {
		t.Fatal(err)
	}
	if want := (1 + math.Exp(-2)) / 2; different(f, want, testTolerance) {
		t.Errorf("factor=%g, want %g", f, want)
	}
}

func TestPotentialFactorUnitsDimensionCheck(t *testing.T) {
	v := NewZhouPotentialDependence()
	notAPressure := unit.New(-1, unit.Dimensions{unit.LengthDim: 1})
	if _, err := PotentialFactorUnits(v, notAPressure); err == nil {
		t.Error("expected a dimension mismatch error")
	}
}
