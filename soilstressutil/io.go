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

package soilstressutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/canopymodel/soilstress"
)

// ReadForcing reads a CSV forcing series. The file must have a header
// row containing a "soilmoist" column and may contain an "swp" column;
// other columns are ignored. Column matching is case-insensitive.
func ReadForcing(r io.Reader) ([]soilstress.ForcingStep, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("soilstressutil: reading forcing header: %v", err)
	}
	iMoist, iSWP := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "soilmoist":
			iMoist = i
		case "swp":
			iSWP = i
		}
	}
	if iMoist < 0 {
		return nil, fmt.Errorf("soilstressutil: forcing file has no \"soilmoist\" column; columns are %v", header)
	}
	var forcing []soilstress.ForcingStep
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("soilstressutil: reading forcing line %d: %v", line, err)
		}
		var f soilstress.ForcingStep
		f.SoilMoist, err = strconv.ParseFloat(strings.TrimSpace(record[iMoist]), 64)
		if err != nil {
			return nil, fmt.Errorf("soilstressutil: forcing line %d: bad soilmoist value %q", line, record[iMoist])
		}
		if iSWP >= 0 {
			f.SWP, err = strconv.ParseFloat(strings.TrimSpace(record[iSWP]), 64)
			if err != nil {
				return nil, fmt.Errorf("soilstressutil: forcing line %d: bad swp value %q", line, record[iSWP])
			}
		}
		forcing = append(forcing, f)
	}
	if len(forcing) == 0 {
		return nil, fmt.Errorf("soilstressutil: forcing file contains no data rows")
	}
	return forcing, nil
}

// ReadObserved reads the "fsoil" column of a CSV observation series
// for calibration. Column matching is case-insensitive; other columns
// are ignored.
func ReadObserved(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("soilstressutil: reading observation header: %v", err)
	}
	iObs := -1
	for i, name := range header {
		if strings.ToLower(strings.TrimSpace(name)) == "fsoil" {
			iObs = i
		}
	}
	if iObs < 0 {
		return nil, fmt.Errorf("soilstressutil: observation file has no \"fsoil\" column; columns are %v", header)
	}
	var obs []float64
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("soilstressutil: reading observation line %d: %v", line, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[iObs]), 64)
		if err != nil {
			return nil, fmt.Errorf("soilstressutil: observation line %d: bad fsoil value %q", line, record[iObs])
		}
		obs = append(obs, v)
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("soilstressutil: observation file contains no data rows")
	}
	return obs, nil
}

// WriteResults writes one CSV row per simulation step, with a header.
func WriteResults(w io.Writer, results []soilstress.StepResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"soilmoist", "fsoil", "fpot"}); err != nil {
		return fmt.Errorf("soilstressutil: writing results: %v", err)
	}
	for _, r := range results {
		record := []string{
			strconv.FormatFloat(r.SoilMoist, 'g', -1, 64),
			strconv.FormatFloat(r.FSoil, 'g', -1, 64),
			strconv.FormatFloat(r.FPot, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("soilstressutil: writing results: %v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
