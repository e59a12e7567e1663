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

// ApplySoilMoisture updates s.FSoil, the [0,1] soil-water multiplier on
// stomatal conductance, from s.SoilMoist according to the method
// configuration. It returns s to allow chaining.
//
// The full dispatch over (method, data) pairs lives in this one switch
// so it can be audited in one place:
//
//	Constant   | NoSoilData        | FSoil = 1
//	Deficit    | content-based     | FSoil = deficitEffect of normalized deficit
//	Deficit    | DeficitSoilData   | FSoil = deficitEffect of SoilMoist
//	Potential  | PotentialSoilData | FSoil = potentialEffect of SoilMoist
//	Volumetric | SimulatedSoilData | SoilMoist = SoilRoot/SoilDepth, FSoil untouched
//	Volumetric | content-based     | FSoil = linear ramp between WC1 and WC2
//
// The simulated-volumetric row only refreshes the simulated moisture
// store and deliberately leaves FSoil at its previous value; see the
// package documentation for the provenance of that gap.
func ApplySoilMoisture(m SoilMethod, s *LeafState) *LeafState {
	switch m := m.(type) {
	case ConstantSoilMethod:
		s.FSoil = 1
	case DeficitSoilMethod:
		x := s.SoilMoist
		if c, ok := m.data.(ContentCapable); ok {
			// Normalize volumetric content to a dimensionless deficit.
			swmax, swmin := c.contentBounds()
			x = (swmax - s.SoilMoist) / (swmax - swmin)
		}
		smd1, smd2 := m.data.deficitParams()
		s.FSoil = deficitEffect(smd1, smd2, x)
	case PotentialSoilMethod:
		s.FSoil = potentialEffect(m.data.SWPExp, s.SoilMoist)
	case VolumetricSoilMethod:
		if _, ok := m.data.(SimulatedSoilData); ok {
			s.SoilMoist = m.SoilRoot / m.SoilDepth
			break
		}
		span := m.WC2 - m.WC1
		s.FSoil = clamp(-m.WC1/span+s.SoilMoist/span, 0, 1)
	default:
		panic(fmt.Sprintf("soilstress: unknown soil method type %T", m))
	}
	return s
}

// deficitEffect is the Granier and Loustau (1994) response to the
// dimensionless soil moisture deficit x: exponential when smd1 is
// positive, piecewise linear when only smd2 is positive, and no
// limitation otherwise. When both parameters are positive the
// exponential branch wins. The result is floored at zero.
func deficitEffect(smd1, smd2, x float64) float64 {
	effect := 1.0
	if smd1 > 0 {
		effect = 1 - smd1*math.Exp(smd2*x*x)
	} else if smd2 > 0 {
		if 1-x < smd2 {
			effect = (1 - x) / smd2
		}
	}
	return math.Max(effect, 0)
}

// potentialEffect is an exponential response to soil water potential
// swp [MPa]. A non-positive swpexp left the response undefined in the
// upstream formulation; NaN is returned so the gap surfaces in output
// instead of masquerading as a valid multiplier.
func potentialEffect(swpexp, swp float64) float64 {
	if swpexp > 0 {
		return math.Max(math.Exp(swpexp*swp), 0)
	}
	return math.NaN()
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
