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

package params

import "testing"

func TestDefaultsWithinBounds(t *testing.T) {
	for _, d := range append(Soil(), Potential()...) {
		if d.Min >= d.Max {
			t.Errorf("%s: bounds inverted: [%g, %g]", d.Name, d.Min, d.Max)
		}
		if d.Default < d.Min || d.Default > d.Max {
			t.Errorf("%s: default %g outside [%g, %g]", d.Name, d.Default, d.Min, d.Max)
		}
		if d.Units == "" {
			t.Errorf("%s: missing units string", d.Name)
		}
	}
}

func TestSampleWithinBounds(t *testing.T) {
	for _, d := range append(Soil(), Potential()...) {
		for i := 0; i < 100; i++ {
			v := d.Sample()
			if v < d.Min || v > d.Max {
				t.Fatalf("%s: sample %g outside [%g, %g]", d.Name, v, d.Min, d.Max)
			}
		}
	}
}

func TestBetaPriorOnVolumetricThresholds(t *testing.T) {
	for _, name := range []string{"VolumetricSoilMethod.WC1", "VolumetricSoilMethod.WC2"} {
		d, err := Lookup(Soil(), name)
		if err != nil {
			t.Fatal(err)
		}
		if d.Prior == nil {
			t.Errorf("%s: expected a Beta(2,2) prior", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup(Soil(), "NoSuchParameter"); err == nil {
		t.Error("expected an error for an unknown parameter name")
	}
}
