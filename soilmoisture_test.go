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
	"math"
	"testing"
)

const testTolerance = 1.e-10

func different(a, b, tolerance float64) bool {
	return math.Abs(a-b) > tolerance
}

func TestConstantMethod(t *testing.T) {
	m := NewConstantSoilMethod()
	for _, soilmoist := range []float64{-10, 0, 0.5, 1, 1e6} {
		s := &LeafState{SoilMoist: soilmoist, FSoil: 0.1}
		ApplySoilMoisture(m, s)
		if s.FSoil != 1 {
			t.Errorf("soilmoist=%g: fsoil=%g, want 1", soilmoist, s.FSoil)
		}
	}
}

func TestDeficitMethodExponential(t *testing.T) {
	d := DeficitSoilData{SMD1: 0.2, SMD2: 0.5}
	m := NewDeficitSoilMethod(d)
	s := &LeafState{SoilMoist: 0.5}
	ApplySoilMoisture(m, s)
	want := 1 - 0.2*math.Exp(0.5*0.5*0.5)
	if different(s.FSoil, want, testTolerance) {
		t.Errorf("fsoil=%g, want %g", s.FSoil, want)
	}
}

func TestDeficitMethodLinear(t *testing.T) {
	d := DeficitSoilData{SMD1: 0, SMD2: 0.9}
	m := NewDeficitSoilMethod(d)

	s := &LeafState{SoilMoist: 0.7} // 1-x = 0.3 < smd2
	ApplySoilMoisture(m, s)
	if want := 0.3 / 0.9; different(s.FSoil, want, testTolerance) {
		t.Errorf("within threshold: fsoil=%g, want %g", s.FSoil, want)
	}

	s.SoilMoist = 0.05 // 1-x = 0.95 >= smd2: no limitation
	ApplySoilMoisture(m, s)
	if s.FSoil != 1 {
		t.Errorf("beyond threshold: fsoil=%g, want 1", s.FSoil)
	}
}

func TestDeficitMethodNoParameters(t *testing.T) {
	m := NewDeficitSoilMethod(DeficitSoilData{})
	s := &LeafState{SoilMoist: 0.5}
	ApplySoilMoisture(m, s)
	if s.FSoil != 1 {
		t.Errorf("fsoil=%g, want 1", s.FSoil)
	}
}

// When both shape parameters are positive, the exponential branch must
// win over the linear one. With smd1=2 the exponential effect goes
// negative and is floored at zero, while the linear branch would have
// reported no limitation.
func TestDeficitBranchPriority(t *testing.T) {
	d := DeficitSoilData{SMD1: 2, SMD2: 0.5}
	m := NewDeficitSoilMethod(d)
	s := &LeafState{SoilMoist: 0.5}
	ApplySoilMoisture(m, s)
	if s.FSoil != 0 {
		t.Errorf("fsoil=%g, want 0 (exponential branch floored)", s.FSoil)
	}
}

func TestDeficitFloor(t *testing.T) {
	d := DeficitSoilData{SMD1: 5, SMD2: 1}
	m := NewDeficitSoilMethod(d)
	s := &LeafState{SoilMoist: 1}
	ApplySoilMoisture(m, s)
	if s.FSoil != 0 {
		t.Errorf("fsoil=%g, want 0", s.FSoil)
	}
}

// A deficit method on content-based data must normalize volumetric
// content to a dimensionless deficit before applying the response.
func TestContentToDeficitConversion(t *testing.T) {
	c := ContentSoilData{
		DeficitSoilData: DeficitSoilData{SMD1: 0, SMD2: 0.9},
		SWMax:           1,
		SWMin:           0,
	}
	m := NewDeficitSoilMethod(c)
	s := &LeafState{SoilMoist: 0.3} // deficit = (1-0.3)/(1-0) = 0.7
	ApplySoilMoisture(m, s)
	// 1-0.7 = 0.3 < 0.9, so the linear branch gives 0.3/0.9. Without
	// the conversion the input 0.3 would have given 0.7/0.9 instead.
	if want := 0.3 / 0.9; different(s.FSoil, want, testTolerance) {
		t.Errorf("fsoil=%g, want %g", s.FSoil, want)
	}
}

func TestContentConversionWithBounds(t *testing.T) {
	c := ContentSoilData{
		DeficitSoilData: DeficitSoilData{SMD1: 0.2, SMD2: 0.5},
		SWMax:           0.4,
		SWMin:           0.1,
	}
	m := NewDeficitSoilMethod(c)
	s := &LeafState{SoilMoist: 0.25} // deficit = (0.4-0.25)/(0.4-0.1) = 0.5
	ApplySoilMoisture(m, s)
	want := 1 - 0.2*math.Exp(0.5*0.5*0.5)
	if different(s.FSoil, want, testTolerance) {
		t.Errorf("fsoil=%g, want %g", s.FSoil, want)
	}
}

func TestPotentialMethod(t *testing.T) {
	m := NewPotentialSoilMethod(PotentialSoilData{SWPExp: 1})
	s := &LeafState{SoilMoist: -0.5}
	ApplySoilMoisture(m, s)
	if want := math.Exp(-0.5); different(s.FSoil, want, testTolerance) {
		t.Errorf("fsoil=%g, want %g", s.FSoil, want)
	}
}

// Known gap: a non-positive SWPExp leaves the potential response
// undefined upstream. The engine reports NaN so the condition cannot
// pass silently for a valid multiplier.
func TestPotentialMethodUndefined(t *testing.T) {
	for _, swpexp := range []float64{0, -1} {
		m := NewPotentialSoilMethod(PotentialSoilData{SWPExp: swpexp})
		s := &LeafState{SoilMoist: -0.5}
		ApplySoilMoisture(m, s)
		if !math.IsNaN(s.FSoil) {
			t.Errorf("swpexp=%g: fsoil=%g, want NaN", swpexp, s.FSoil)
		}
	}
}

func TestVolumetricRamp(t *testing.T) {
	m, err := NewVolumetricSoilMethod(NewContentSoilData(), 0.2, 0.8, 0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		soilmoist, fsoil float64
	}{
		{0.2, 0},
		{0.8, 1},
		{0.5, 0.5},
		{1.0, 1},  // beyond wc2: clamped
		{-0.1, 0}, // below wc1: clamped
	}
	for _, tt := range tests {
		s := &LeafState{SoilMoist: tt.soilmoist}
		ApplySoilMoisture(m, s)
		if different(s.FSoil, tt.fsoil, testTolerance) {
			t.Errorf("soilmoist=%g: fsoil=%g, want %g", tt.soilmoist, s.FSoil, tt.fsoil)
		}
	}
}

// Known gap: the simulated-volumetric pairing refreshes the simulated
// moisture store without assigning fsoil. The previous fsoil value must
// survive untouched.
func TestVolumetricSimulated(t *testing.T) {
	m, err := NewVolumetricSoilMethod(NewSimulatedSoilData(), 0.2, 0.8, 0.3, 0.6)
	if err != nil {
		t.Fatal(err)
	}
	s := &LeafState{SoilMoist: 0.9, FSoil: 0.42}
	ApplySoilMoisture(m, s)
	if different(s.SoilMoist, 0.5, testTolerance) {
		t.Errorf("soilmoist=%g, want 0.5", s.SoilMoist)
	}
	if s.FSoil != 0.42 {
		t.Errorf("fsoil=%g, want 0.42 (untouched)", s.FSoil)
	}
}

func TestVolumetricInvertedThresholds(t *testing.T) {
	_, err := NewVolumetricSoilMethod(NewContentSoilData(), 0.8, 0.2, 0.5, 0.5)
	if err == nil {
		t.Fatal("expected error for inverted thresholds")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("error type %T, want *ConfigError", err)
	}
}

// The engine is a pure function of the state's soil moisture and the
// configuration: applying it twice must not change the result.
func TestApplyIdempotent(t *testing.T) {
	m := NewDeficitSoilMethod(NewDeficitSoilData())
	s := &LeafState{SoilMoist: 0.5}
	ApplySoilMoisture(m, s)
	first := s.FSoil
	ApplySoilMoisture(m, s)
	if s.FSoil != first {
		t.Errorf("second application changed fsoil: %g != %g", s.FSoil, first)
	}
}

// Except for the two documented gaps, every (method, data) pairing must
// produce fsoil within [0,1].
func TestFSoilBounds(t *testing.T) {
	volumetric, err := NewVolumetricSoilMethod(NewContentSoilData(), 0.2, 0.8, 0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	// The potential method takes a water potential, which is never
	// positive, and its exponential response exceeds 1 outside that
	// domain; sweep it over non-positive inputs only.
	methods := []struct {
		method   SoilMethod
		min, max float64
	}{
		{NewConstantSoilMethod(), -2, 2},
		{NewDeficitSoilMethod(NewDeficitSoilData()), -2, 2},
		{NewDeficitSoilMethod(NewContentSoilData()), -2, 2},
		{NewPotentialSoilMethod(NewPotentialSoilData()), -2, 0},
		{volumetric, -2, 2},
	}
	for _, tt := range methods {
		m := tt.method
		for soilmoist := tt.min; soilmoist <= tt.max; soilmoist += 0.125 {
			s := &LeafState{SoilMoist: soilmoist}
			ApplySoilMoisture(m, s)
			if s.FSoil < 0 || s.FSoil > 1 || math.IsNaN(s.FSoil) {
				t.Errorf("%T, soilmoist=%g: fsoil=%g out of [0,1]", m, soilmoist, s.FSoil)
			}
		}
	}
}

// The engine must only touch the fields its dispatch row documents.
func TestStateUntouchedFields(t *testing.T) {
	m := NewDeficitSoilMethod(NewDeficitSoilData())
	s := &LeafState{SoilMoist: 0.5, Cs: 400, Tleaf: 25, VPD: 1.5, GS: 0.2}
	ApplySoilMoisture(m, s)
	if s.Cs != 400 || s.Tleaf != 25 || s.VPD != 1.5 || s.GS != 0.2 {
		t.Errorf("unrelated state fields were modified: %+v", s)
	}
	if s.SoilMoist != 0.5 {
		t.Errorf("soilmoist modified by a non-simulated method: %g", s.SoilMoist)
	}
}
