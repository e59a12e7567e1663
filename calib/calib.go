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

// Package calib fits soil-method parameters to an observed fsoil
// series by Monte-Carlo sampling from the prior distributions in
// package params.
package calib

import (
	"fmt"
	"math"

	"github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/canopymodel/soilstress"
	"github.com/canopymodel/soilstress/params"
)

// Stats summarizes the agreement between a predicted and an observed
// series.
type Stats struct {
	RMSE     float64 // root mean square error
	Bias     float64 // mean of predicted minus observed
	RSquared float64 // coefficient of determination of predicted against observed
}

// Score compares a predicted series against observations. The two
// series must have equal, nonzero length.
func Score(pred, obs []float64) (Stats, error) {
	if len(pred) != len(obs) {
		return Stats{}, fmt.Errorf("calib: length mismatch: %d predictions, %d observations", len(pred), len(obs))
	}
	if len(pred) == 0 {
		return Stats{}, fmt.Errorf("calib: empty series")
	}
	resid := make([]float64, len(pred))
	copy(resid, pred)
	floats.Sub(resid, obs)
	n := float64(len(resid))
	_, _, rsquared, _, _, _ := stats.LinearRegression(obs, pred)
	return Stats{
		RMSE:     math.Sqrt(floats.Dot(resid, resid) / n),
		Bias:     floats.Sum(resid) / n,
		RSquared: rsquared,
	}, nil
}

// A Builder maps a parameter vector, ordered as the corresponding
// []params.Def, to a soil method. Returning an error rejects the
// vector (for example an inverted volumetric ramp); Fit skips rejected
// draws rather than failing.
type Builder func(p []float64) (soilstress.SoilMethod, error)

// VolumetricBuilder returns a Builder constructing a volumetric method
// on d from a [wc1, wc2] parameter vector.
func VolumetricBuilder(d soilstress.ContentCapable) Builder {
	return func(p []float64) (soilstress.SoilMethod, error) {
		if len(p) != 2 {
			return nil, fmt.Errorf("calib: volumetric builder needs 2 parameters, got %d", len(p))
		}
		m, err := soilstress.NewVolumetricSoilMethod(d, p[0], p[1], 0.5, 0.5)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// DeficitBuilder returns a Builder constructing a deficit method from a
// [smd1, smd2] parameter vector.
func DeficitBuilder() Builder {
	return func(p []float64) (soilstress.SoilMethod, error) {
		if len(p) != 2 {
			return nil, fmt.Errorf("calib: deficit builder needs 2 parameters, got %d", len(p))
		}
		return soilstress.NewDeficitSoilMethod(soilstress.DeficitSoilData{SMD1: p[0], SMD2: p[1]}), nil
	}
}

// A Result holds the best parameter set found by Fit and its score.
type Result struct {
	Params []float64
	Stats  Stats
}

// Sample draws n parameter vectors from the priors of defs.
func Sample(defs []params.Def, n int) [][]float64 {
	draws := make([][]float64, n)
	for i := range draws {
		p := make([]float64, len(defs))
		for j, d := range defs {
			p[j] = d.Sample()
		}
		draws[i] = p
	}
	return draws
}

// Fit draws n parameter vectors from the priors of defs, builds and
// runs a simulation for each over forcing, and returns the vector whose
// predicted fsoil series minimizes RMSE against obs. Draws the builder
// rejects are skipped; Fit fails if every draw is rejected.
func Fit(defs []params.Def, build Builder, forcing []soilstress.ForcingStep, obs []float64, n int) (Result, error) {
	if len(forcing) != len(obs) {
		return Result{}, fmt.Errorf("calib: %d forcing steps for %d observations", len(forcing), len(obs))
	}
	best := Result{Stats: Stats{RMSE: math.Inf(1)}}
	for _, p := range Sample(defs, n) {
		m, err := build(p)
		if err != nil {
			continue
		}
		sim := &soilstress.Simulation{Method: m, State: &soilstress.LeafState{}}
		results, err := sim.Run(forcing)
		if err != nil {
			return Result{}, err
		}
		pred := make([]float64, len(results))
		for k, r := range results {
			pred[k] = r.FSoil
		}
		s, err := Score(pred, obs)
		if err != nil {
			return Result{}, err
		}
		if s.RMSE < best.Stats.RMSE {
			best = Result{Params: p, Stats: s}
		}
	}
	if best.Params == nil {
		return Result{}, fmt.Errorf("calib: all %d parameter draws were rejected", n)
	}
	return best, nil
}
