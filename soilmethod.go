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

import "fmt"

// SoilMethod selects how the soil-water limitation on stomatal
// conductance is computed. It is a closed set: ConstantSoilMethod,
// DeficitSoilMethod, PotentialSoilMethod, and VolumetricSoilMethod are
// the only implementations. Each method owns exactly one soil data
// variant; the constructors accept the capability interface the method
// requires, so an incompatible pairing (for example a volumetric method
// with NoSoilData) does not compile.
type SoilMethod interface {
	// Data returns the soil data variant the method operates on.
	Data() SoilData

	soilMethod()
}

// A ConfigError reports an invalid soil-method or potential-dependence
// configuration detected at construction time.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// ConstantSoilMethod ignores soil-water status: the conductance
// multiplier is always 1.
type ConstantSoilMethod struct {
	data NoSoilData
}

// NewConstantSoilMethod returns a method that applies no soil-water
// limitation.
func NewConstantSoilMethod() ConstantSoilMethod {
	return ConstantSoilMethod{}
}

func (ConstantSoilMethod) soilMethod() {}

// Data returns the soil data variant the method operates on.
func (m ConstantSoilMethod) Data() SoilData { return m.data }

// DeficitSoilMethod computes the conductance multiplier from soil
// moisture deficit. Content-based data are converted to a normalized
// deficit before the response formula is applied.
type DeficitSoilMethod struct {
	data DeficitCapable
}

// NewDeficitSoilMethod returns a deficit-based method operating on d.
func NewDeficitSoilMethod(d DeficitCapable) DeficitSoilMethod {
	return DeficitSoilMethod{data: d}
}

func (DeficitSoilMethod) soilMethod() {}

// Data returns the soil data variant the method operates on.
func (m DeficitSoilMethod) Data() SoilData { return m.data }

// PotentialSoilMethod computes the conductance multiplier from soil
// water potential.
type PotentialSoilMethod struct {
	data PotentialSoilData
}

// NewPotentialSoilMethod returns a potential-based method operating on d.
func NewPotentialSoilMethod(d PotentialSoilData) PotentialSoilMethod {
	return PotentialSoilMethod{data: d}
}

func (PotentialSoilMethod) soilMethod() {}

// Data returns the soil data variant the method operates on.
func (m PotentialSoilMethod) Data() SoilData { return m.data }

// VolumetricSoilMethod computes the conductance multiplier as a linear
// ramp in volumetric water content between the thresholds WC1 and WC2.
type VolumetricSoilMethod struct {
	data ContentCapable

	WC1 float64 // volumetric content below which conductance is zero [m3 m-3]
	WC2 float64 // volumetric content above which conductance is unlimited [m3 m-3]

	SoilRoot  float64 // root-zone water store, used with simulated soil data [m]
	SoilDepth float64 // root-zone depth, used with simulated soil data [m]
}

// NewVolumetricSoilMethod returns a volumetric method operating on d.
// It returns a ConfigError if wc1 >= wc2, which would invert the ramp.
func NewVolumetricSoilMethod(d ContentCapable, wc1, wc2, soilRoot, soilDepth float64) (VolumetricSoilMethod, error) {
	if wc1 >= wc2 {
		return VolumetricSoilMethod{}, configErrorf(
			"soilstress: volumetric thresholds are inverted: wc1 (%g) must be less than wc2 (%g)", wc1, wc2)
	}
	return VolumetricSoilMethod{data: d, WC1: wc1, WC2: wc2, SoilRoot: soilRoot, SoilDepth: soilDepth}, nil
}

// DefaultVolumetricSoilMethod returns a volumetric method on d with the
// default thresholds (WC1 = WC2 = 0.5). The defaults form a degenerate
// ramp and are meant to be overwritten before use; prefer
// NewVolumetricSoilMethod, which validates the thresholds.
func DefaultVolumetricSoilMethod(d ContentCapable) VolumetricSoilMethod {
	return VolumetricSoilMethod{data: d, WC1: 0.5, WC2: 0.5, SoilRoot: 0.5, SoilDepth: 0.5}
}

func (VolumetricSoilMethod) soilMethod() {}

// Data returns the soil data variant the method operates on.
func (m VolumetricSoilMethod) Data() SoilData { return m.data }
