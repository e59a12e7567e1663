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

// SoilData describes how soil-water status is represented numerically.
// It is a closed set: NoSoilData, DeficitSoilData, ContentSoilData,
// SimulatedSoilData, and PotentialSoilData are the only implementations,
// and the marker method keeps external types out so the dispatch table
// in ApplySoilMoisture stays exhaustive.
type SoilData interface {
	soilData()
}

// DeficitCapable is satisfied by soil data that carry the deficit-response
// shape parameters (DeficitSoilData, ContentSoilData, SimulatedSoilData).
type DeficitCapable interface {
	SoilData
	deficitParams() (smd1, smd2 float64)
}

// ContentCapable is satisfied by soil data that carry volumetric
// water-content bounds in addition to the deficit parameters
// (ContentSoilData, SimulatedSoilData).
type ContentCapable interface {
	DeficitCapable
	contentBounds() (swmax, swmin float64)
}

// NoSoilData disables any soil-water effect on stomatal conductance.
type NoSoilData struct{}

func (NoSoilData) soilData() {}

// DeficitSoilData parameterizes a response to soil moisture deficit,
// the shortfall of soil water below a reference maximum.
type DeficitSoilData struct {
	// SMD1 controls the exponential deficit response. When positive it
	// selects the exponential branch of the deficit formula.
	SMD1 float64

	// SMD2 is the exponent scale of the exponential branch, or, when
	// SMD1 is not positive, the threshold of the linear branch.
	SMD2 float64
}

func (DeficitSoilData) soilData() {}

func (d DeficitSoilData) deficitParams() (float64, float64) { return d.SMD1, d.SMD2 }

// NewDeficitSoilData returns deficit-response soil data with default
// parameters (SMD1 = SMD2 = 1).
func NewDeficitSoilData() DeficitSoilData {
	return DeficitSoilData{SMD1: 1, SMD2: 1}
}

// ContentSoilData represents soil water as volumetric content bounded
// by SWMin and SWMax. It carries the deficit parameters so that it can
// also drive a deficit-based method after normalization.
type ContentSoilData struct {
	DeficitSoilData

	SWMax float64 // volumetric content at saturation [m3 m-3]
	SWMin float64 // residual volumetric content [m3 m-3]
}

func (c ContentSoilData) contentBounds() (float64, float64) { return c.SWMax, c.SWMin }

// NewContentSoilData returns content-based soil data with default
// parameters (SMD1 = SMD2 = 1, SWMax = 1, SWMin = 0).
func NewContentSoilData() ContentSoilData {
	return ContentSoilData{DeficitSoilData: NewDeficitSoilData(), SWMax: 1, SWMin: 0}
}

// SimulatedSoilData marks soil moisture as tracked by the model itself
// rather than supplied externally. The payload matches ContentSoilData;
// the distinct type selects a different dispatch path.
type SimulatedSoilData struct {
	ContentSoilData
}

// NewSimulatedSoilData returns model-simulated soil data with the same
// defaults as NewContentSoilData.
func NewSimulatedSoilData() SimulatedSoilData {
	return SimulatedSoilData{ContentSoilData: NewContentSoilData()}
}

// PotentialSoilData represents soil water as a water potential driving
// an exponential conductance response.
type PotentialSoilData struct {
	SWPExp float64 // exponential response shape parameter [MPa-1]
}

func (PotentialSoilData) soilData() {}

// NewPotentialSoilData returns potential-based soil data with the
// default shape parameter (SWPExp = 1).
func NewPotentialSoilData() PotentialSoilData {
	return PotentialSoilData{SWPExp: 1}
}
