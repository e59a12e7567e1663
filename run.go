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

// A ForcingStep holds the driving inputs for one simulation step.
type ForcingStep struct {
	// SoilMoist is the soil water status, in the units of the soil data
	// variant in use (volumetric content, normalized deficit, or water
	// potential).
	SoilMoist float64

	// SWP is the water potential driving the potential-dependence
	// factor, in the units of the dependence variant in use. Ignored
	// when the simulation has no potential dependence configured.
	SWP float64
}

// A StepResult records the engine outputs for one simulation step.
type StepResult struct {
	SoilMoist float64 // soil water status after the step; simulated methods overwrite it
	FSoil     float64 // conductance multiplier after the step
	FPot      float64 // assimilation multiplier from the potential dependence
}

// A Simulation applies a soil method and an optional potential
// dependence over a forcing series, carrying one leaf state across
// steps. The configuration fields are read-only during Run; the State
// is mutated in place. A Simulation must not be shared between
// concurrent Run calls; give each invocation its own State.
type Simulation struct {
	Method    SoilMethod
	Potential PotentialDependence // nil means no potential dependence
	State     *LeafState
}

// Run applies the engine once per forcing step and returns one result
// per step. It returns an error if the simulation is missing a method
// or a state.
func (sim *Simulation) Run(forcing []ForcingStep) ([]StepResult, error) {
	if sim.Method == nil {
		return nil, fmt.Errorf("soilstress: simulation has no soil method")
	}
	if sim.State == nil {
		return nil, fmt.Errorf("soilstress: simulation has no leaf state")
	}
	results := make([]StepResult, len(forcing))
	for i, f := range forcing {
		sim.State.SoilMoist = f.SoilMoist
		ApplySoilMoisture(sim.Method, sim.State)
		r := StepResult{
			SoilMoist: sim.State.SoilMoist,
			FSoil:     sim.State.FSoil,
			FPot:      1,
		}
		if sim.Potential != nil {
			r.FPot = PotentialFactor(sim.Potential, f.SWP)
		}
		results[i] = r
	}
	return results, nil
}
