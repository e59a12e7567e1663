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
	"fmt"
	"os"
	"strings"

	"github.com/canopymodel/soilstress"
)

// ConfigData holds a fully resolved soilstress configuration.
type ConfigData struct {
	// SoilMethod names the soil-method variant. Valid options are
	// "constant", "deficit", "potential", and "volumetric".
	SoilMethod string

	// SoilData names the soil-data variant. Valid options are "none",
	// "deficit", "content", "simulated", and "potential"; each method
	// accepts only the variants it can operate on.
	SoilData string

	SMD1   float64 // deficit-response shape parameter [-]
	SMD2   float64 // deficit-response shape parameter [-]
	SWMax  float64 // volumetric content at saturation [m3 m-3]
	SWMin  float64 // residual volumetric content [m3 m-3]
	SWPExp float64 // exponential potential-response shape parameter [MPa-1]

	WC1       float64 // lower volumetric threshold of the linear ramp [m3 m-3]
	WC2       float64 // upper volumetric threshold of the linear ramp [m3 m-3]
	SoilRoot  float64 // root-zone water store [m]
	SoilDepth float64 // root-zone depth [m]

	// PotentialDependence names the assimilation dependence on water
	// potential. Valid options are "none", "linear", and "zhou".
	PotentialDependence string

	VParA  float64 // linear dependence zero-assimilation potential [kPa]
	VParB  float64 // linear dependence full-assimilation potential [kPa]
	S      float64 // Zhou dependence sensitivity [MPa-1]
	PsiRef float64 // Zhou dependence reference potential [MPa]

	// ForcingFile is the path to the CSV forcing series. The path can
	// include environment variables.
	ForcingFile string

	// OutputFile is the path the result CSV is written to. The path can
	// include environment variables.
	OutputFile string
}

// ExpandEnv expands environment variables in the configuration's file
// paths.
func (c *ConfigData) ExpandEnv() {
	c.ForcingFile = os.ExpandEnv(c.ForcingFile)
	c.OutputFile = os.ExpandEnv(c.OutputFile)
}

// BuildMethod constructs the configured soil method. An unknown method
// or data name, or a pairing the method cannot operate on, is an error:
// a misconfiguration fails here rather than producing a silently wrong
// number at simulation time.
func (c *ConfigData) BuildMethod() (soilstress.SoilMethod, error) {
	method := strings.ToLower(c.SoilMethod)
	data := strings.ToLower(c.SoilData)
	switch method {
	case "constant":
		if data != "" && data != "none" {
			return nil, fmt.Errorf("soilstressutil: the constant method takes soil data \"none\", not %q", c.SoilData)
		}
		return soilstress.NewConstantSoilMethod(), nil
	case "deficit":
		switch data {
		case "deficit":
			return soilstress.NewDeficitSoilMethod(c.deficitData()), nil
		case "content":
			return soilstress.NewDeficitSoilMethod(c.contentData()), nil
		case "simulated":
			return soilstress.NewDeficitSoilMethod(c.simulatedData()), nil
		default:
			return nil, fmt.Errorf("soilstressutil: the deficit method takes soil data \"deficit\", \"content\", or \"simulated\", not %q", c.SoilData)
		}
	case "potential":
		if data != "potential" {
			return nil, fmt.Errorf("soilstressutil: the potential method takes soil data \"potential\", not %q", c.SoilData)
		}
		return soilstress.NewPotentialSoilMethod(soilstress.PotentialSoilData{SWPExp: c.SWPExp}), nil
	case "volumetric":
		switch data {
		case "content":
			m, err := soilstress.NewVolumetricSoilMethod(c.contentData(), c.WC1, c.WC2, c.SoilRoot, c.SoilDepth)
			if err != nil {
				return nil, err
			}
			return m, nil
		case "simulated":
			m, err := soilstress.NewVolumetricSoilMethod(c.simulatedData(), c.WC1, c.WC2, c.SoilRoot, c.SoilDepth)
			if err != nil {
				return nil, err
			}
			return m, nil
		default:
			return nil, fmt.Errorf("soilstressutil: the volumetric method takes soil data \"content\" or \"simulated\", not %q", c.SoilData)
		}
	default:
		return nil, fmt.Errorf("soilstressutil: unknown soil method %q; valid options are constant, deficit, potential, and volumetric", c.SoilMethod)
	}
}

// BuildPotential constructs the configured potential dependence.
func (c *ConfigData) BuildPotential() (soilstress.PotentialDependence, error) {
	switch strings.ToLower(c.PotentialDependence) {
	case "", "none":
		return soilstress.NoPotentialDependence{}, nil
	case "linear":
		pd, err := soilstress.NewLinearPotentialDependence(c.VParA, c.VParB)
		if err != nil {
			return nil, err
		}
		return pd, nil
	case "zhou":
		return soilstress.ZhouPotentialDependence{S: c.S, PsiRef: c.PsiRef}, nil
	default:
		return nil, fmt.Errorf("soilstressutil: unknown potential dependence %q; valid options are none, linear, and zhou", c.PotentialDependence)
	}
}

func (c *ConfigData) deficitData() soilstress.DeficitSoilData {
	return soilstress.DeficitSoilData{SMD1: c.SMD1, SMD2: c.SMD2}
}

func (c *ConfigData) contentData() soilstress.ContentSoilData {
	return soilstress.ContentSoilData{
		DeficitSoilData: c.deficitData(),
		SWMax:           c.SWMax,
		SWMin:           c.SWMin,
	}
}

func (c *ConfigData) simulatedData() soilstress.SimulatedSoilData {
	return soilstress.SimulatedSoilData{ContentSoilData: c.contentData()}
}
