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

// Package soilstress computes the soil-water limitation of leaf gas
// exchange: a dimensionless multiplier (fsoil) scaling stomatal
// conductance from soil-water status, and a related multiplier scaling
// assimilation from leaf or soil water potential.
//
// A soil method (SoilMethod) pairs a response formula with a soil data
// variant (SoilData) describing how soil water is measured or modeled;
// ApplySoilMoisture dispatches on the pairing and updates the caller's
// LeafState in place. PotentialFactor evaluates the water-potential
// dependence as a pure function.
//
// Two legacy gaps are preserved rather than papered over. A volumetric
// method paired with simulated soil data only refreshes the simulated
// moisture store and does not assign fsoil, and the potential response
// is undefined when its shape parameter is not positive; the latter
// reports NaN so the condition is visible in output. Both carry over
// from the formulation this package reproduces.
package soilstress

// Version gives the version number of this package.
// Versioning scheme at: http://semver.org/.
const Version = "1.2.0"
