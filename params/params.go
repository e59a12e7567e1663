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

// Package params holds the calibration metadata for the soil-method and
// potential-dependence parameters: defaults, units, bounds, priors, and
// descriptions. The metadata is a side table keyed by parameter name;
// it has no effect on the formulas themselves, which read plain struct
// fields. Calibration tooling and the schema command are its consumers.
package params

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// A Prior draws random values from a parameter's prior distribution.
// The gonum distuv distributions satisfy it.
type Prior interface {
	Rand() float64
}

// A Def describes one tunable parameter.
type Def struct {
	Name        string  // field name, qualified by variant, e.g. "VolumetricSoilMethod.WC1"
	Units       string  // advisory unit string, "-" for dimensionless
	Default     float64 // value used when a configuration omits the field
	Min, Max    float64 // calibration bounds
	Description string

	// Prior is the prior distribution for calibration. Where it is nil
	// the parameter is not normally calibrated and Sample falls back to
	// a uniform draw over [Min, Max].
	Prior Prior
}

// Sample draws one value from the parameter's prior, restricted to
// [Min, Max].
func (d Def) Sample() float64 {
	p := d.Prior
	if p == nil {
		p = distuv.Uniform{Min: d.Min, Max: d.Max}
	}
	v := p.Rand()
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

// Soil returns the parameter definitions for the soil-method and
// soil-data variants.
func Soil() []Def {
	return []Def{
		{
			Name:        "DeficitSoilData.SMD1",
			Units:       "-",
			Default:     1,
			Min:         0,
			Max:         10,
			Description: "exponential deficit-response shape parameter; non-positive selects the linear branch",
		},
		{
			Name:        "DeficitSoilData.SMD2",
			Units:       "-",
			Default:     1,
			Min:         0,
			Max:         10,
			Description: "exponent scale of the exponential branch, or threshold of the linear branch",
		},
		{
			Name:        "ContentSoilData.SWMax",
			Units:       "m3 m-3",
			Default:     1,
			Min:         0,
			Max:         1,
			Description: "volumetric water content at saturation",
		},
		{
			Name:        "ContentSoilData.SWMin",
			Units:       "m3 m-3",
			Default:     0,
			Min:         0,
			Max:         1,
			Description: "residual volumetric water content",
		},
		{
			Name:        "PotentialSoilData.SWPExp",
			Units:       "MPa-1",
			Default:     1,
			Min:         0,
			Max:         10,
			Description: "exponential potential-response shape parameter",
		},
		{
			Name:        "VolumetricSoilMethod.WC1",
			Units:       "m3 m-3",
			Default:     0.5,
			Min:         0,
			Max:         1,
			Description: "volumetric content below which conductance is zero",
			Prior:       distuv.Beta{Alpha: 2, Beta: 2},
		},
		{
			Name:        "VolumetricSoilMethod.WC2",
			Units:       "m3 m-3",
			Default:     0.5,
			Min:         0,
			Max:         1,
			Description: "volumetric content above which conductance is unlimited",
			Prior:       distuv.Beta{Alpha: 2, Beta: 2},
		},
		{
			Name:        "VolumetricSoilMethod.SoilRoot",
			Units:       "m",
			Default:     0.5,
			Min:         0,
			Max:         2,
			Description: "root-zone water store used with simulated soil data",
		},
		{
			Name:        "VolumetricSoilMethod.SoilDepth",
			Units:       "m",
			Default:     0.5,
			Min:         0.01,
			Max:         2,
			Description: "root-zone depth used with simulated soil data",
		},
	}
}

// Potential returns the parameter definitions for the
// potential-dependence variants.
func Potential() []Def {
	return []Def{
		{
			Name:        "LinearPotentialDependence.VParA",
			Units:       "kPa",
			Default:     -300,
			Min:         -1000,
			Max:         -0.001,
			Description: "water potential at and below which assimilation is zero",
		},
		{
			Name:        "LinearPotentialDependence.VParB",
			Units:       "kPa",
			Default:     -100,
			Min:         -1000,
			Max:         -0.001,
			Description: "water potential at and above which assimilation is unlimited",
		},
		{
			Name:        "ZhouPotentialDependence.S",
			Units:       "MPa-1",
			Default:     2,
			Min:         0.1,
			Max:         10,
			Description: "sensitivity of the logistic potential response",
		},
		{
			Name:        "ZhouPotentialDependence.PsiRef",
			Units:       "MPa",
			Default:     -1,
			Min:         -5,
			Max:         -0.01,
			Description: "reference potential at which the response reaches half its maximum",
		},
	}
}

// Lookup returns the definition named name from defs, or an error if it
// is not present.
func Lookup(defs []Def, name string) (Def, error) {
	for _, d := range defs {
		if d.Name == name {
			return d, nil
		}
	}
	return Def{}, fmt.Errorf("params: no parameter named %q", name)
}
