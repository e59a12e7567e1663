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
	"fmt"

	"github.com/ctessum/unit"
)

// Water potentials are pressures. The engine itself performs no
// implicit conversion; each formula documents the unit it expects, and
// the helpers here convert unit-tagged values at that boundary.
var pressureDims = unit.Dimensions{
	unit.MassDim:   1,
	unit.LengthDim: -1,
	unit.TimeDim:   -2,
}

// Pascals returns v Pa as a unit-tagged water potential.
func Pascals(v float64) *unit.Unit { return unit.New(v, pressureDims) }

// Kilopascals returns v kPa as a unit-tagged water potential.
func Kilopascals(v float64) *unit.Unit { return unit.New(v*1e3, pressureDims) }

// Megapascals returns v MPa as a unit-tagged water potential.
func Megapascals(v float64) *unit.Unit { return unit.New(v*1e6, pressureDims) }

// toPascals returns the value of swp in Pa, or an error if swp does not
// carry pressure dimensions.
func toPascals(swp *unit.Unit) (float64, error) {
	if !swp.Dimensions().Matches(pressureDims) {
		return 0, fmt.Errorf("soilstress: water potential must be a pressure, got %v", swp.Dimensions())
	}
	return swp.Value(), nil
}

// PotentialFactorUnits is PotentialFactor for a unit-tagged water
// potential. It converts swp to the unit the variant expects (kPa for
// LinearPotentialDependence, MPa for ZhouPotentialDependence) and
// returns an error if swp is not a pressure.
func PotentialFactorUnits(v PotentialDependence, swp *unit.Unit) (float64, error) {
	pa, err := toPascals(swp)
	if err != nil {
		return 0, err
	}
	switch v.(type) {
	case LinearPotentialDependence:
		return PotentialFactor(v, pa/1e3), nil
	case ZhouPotentialDependence:
		return PotentialFactor(v, pa/1e6), nil
	default:
		return PotentialFactor(v, pa), nil
	}
}
