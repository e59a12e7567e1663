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

// LeafState holds the mutable per-leaf variables of a gas-exchange
// calculation. The caller owns the record; ApplySoilMoisture reads
// SoilMoist and writes FSoil (or, for the simulated-volumetric pairing,
// overwrites SoilMoist) and touches nothing else. A LeafState must not
// be shared between concurrent calls; the configuration variants may be.
type LeafState struct {
	SoilMoist float64 // soil water status, in the units of the soil data variant
	FSoil     float64 // soil-water conductance multiplier [-]

	Cs    float64 // CO2 concentration at the leaf surface [μmol mol-1]
	Tleaf float64 // leaf temperature [°C]
	VPD   float64 // leaf-to-air vapor pressure deficit [kPa]
	PAR   float64 // photosynthetically active radiation [μmol m-2 s-1]
	GS    float64 // stomatal conductance to water vapor [mol m-2 s-1]
	ALeaf float64 // net assimilation rate [μmol m-2 s-1]
	PsiL  float64 // leaf water potential [MPa]
}
