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
	"math"
)

// PotentialDependence selects how assimilation is scaled by leaf or
// soil water potential. It is a closed set: NoPotentialDependence,
// LinearPotentialDependence, and ZhouPotentialDependence are the only
// implementations. All variants are immutable and safe to share.
type PotentialDependence interface {
	potentialDependence()
}

// NoPotentialDependence applies no water-potential scaling.
type NoPotentialDependence struct{}

func (NoPotentialDependence) potentialDependence() {}

// LinearPotentialDependence scales assimilation linearly between two
// water-potential thresholds. Both thresholds are negative potentials
// in kPa; VParA is the more negative point where assimilation reaches
// zero, VParB the less negative point above which it is unlimited.
type LinearPotentialDependence struct {
	VParA float64 // potential at and below which the factor is zero [kPa]
	VParB float64 // potential at and above which the factor is one [kPa]
}

func (LinearPotentialDependence) potentialDependence() {}

// NewLinearPotentialDependence returns a linear dependence with the
// given thresholds. It returns a ConfigError if vpara >= vparb, which
// would invert the ramp.
func NewLinearPotentialDependence(vpara, vparb float64) (LinearPotentialDependence, error) {
	if vpara >= vparb {
		return LinearPotentialDependence{}, configErrorf(
			"soilstress: potential thresholds are inverted: vpara (%g) must be less than vparb (%g)", vpara, vparb)
	}
	return LinearPotentialDependence{VParA: vpara, VParB: vparb}, nil
}

// DefaultLinearPotentialDependence returns a linear dependence with the
// default thresholds (VParA = -300 kPa, VParB = -100 kPa).
func DefaultLinearPotentialDependence() LinearPotentialDependence {
	return LinearPotentialDependence{VParA: -300, VParB: -100}
}

// ZhouPotentialDependence scales assimilation with the logistic
// response of Zhou et al. (2013). The curve reaches half of its
// maximum at swp = PsiRef and is bounded in (0,1) without hard
// clamping.
type ZhouPotentialDependence struct {
	S      float64 // sensitivity of the response [MPa-1]
	PsiRef float64 // reference water potential [MPa]
}

func (ZhouPotentialDependence) potentialDependence() {}

// NewZhouPotentialDependence returns a Zhou dependence with the default
// parameters (S = 2 MPa-1, PsiRef = -1 MPa).
func NewZhouPotentialDependence() ZhouPotentialDependence {
	return ZhouPotentialDependence{S: 2, PsiRef: -1}
}

// PotentialFactor returns the multiplier scaling assimilation at water
// potential swp. The potential must be supplied in the units the
// variant documents (kPa for LinearPotentialDependence, MPa for
// ZhouPotentialDependence); PotentialFactorUnits performs the
// conversion from a tagged value. The function is pure and safe for
// concurrent use.
func PotentialFactor(v PotentialDependence, swp float64) float64 {
	switch v := v.(type) {
	case NoPotentialDependence:
		return 1
	case LinearPotentialDependence:
		switch {
		case swp < v.VParA:
			return 0
		case swp > v.VParB:
			return 1
		default:
			return (swp - v.VParA) / (v.VParB - v.VParA)
		}
	case ZhouPotentialDependence:
		// Zhou et al. (2013), equation 6.
		return (1 + math.Exp(v.S*v.PsiRef)) / (1 + math.Exp(v.S*(v.PsiRef-swp)))
	default:
		panic(fmt.Sprintf("soilstress: unknown potential dependence type %T", v))
	}
}
