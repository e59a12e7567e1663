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

// Package soilstressutil wires the soilstress model into a command-line
// tool: configuration handling, forcing I/O, and the command tree.
package soilstressutil

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/canopymodel/soilstress"
	"github.com/canopymodel/soilstress/calib"
	"github.com/canopymodel/soilstress/params"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

// soilDefault returns the default value recorded for name in the soil
// parameter table.
func soilDefault(name string) float64 {
	d, err := params.Lookup(params.Soil(), name)
	if err != nil {
		panic(err)
	}
	return d.Default
}

// potentialDefault returns the default value recorded for name in the
// potential-dependence parameter table.
func potentialDefault(name string) float64 {
	d, err := params.Lookup(params.Potential(), name)
	if err != nil {
		panic(err)
	}
	return d.Default
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Options are the configuration options available to soilstress.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel sets the logging verbosity: debug, info, warn, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "SoilMethod",
			usage: `
              SoilMethod selects how the soil-water limitation on stomatal
              conductance is computed. Valid options are constant, deficit,
              potential, and volumetric.`,
			shorthand:  "m",
			defaultVal: "constant",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "SoilData",
			usage: `
              SoilData selects how soil-water status is represented. Valid
              options are none, deficit, content, simulated, and potential;
              each method accepts only the variants it can operate on.`,
			shorthand:  "d",
			defaultVal: "none",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "SMD1",
			usage: `
              SMD1 is the exponential deficit-response shape parameter.
              A non-positive value selects the linear branch.`,
			defaultVal: soilDefault("DeficitSoilData.SMD1"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "SMD2",
			usage: `
              SMD2 is the exponent scale of the exponential deficit branch,
              or the threshold of the linear branch.`,
			defaultVal: soilDefault("DeficitSoilData.SMD2"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "SWMax",
			usage: `
              SWMax is the volumetric water content at saturation [m3 m-3].`,
			defaultVal: soilDefault("ContentSoilData.SWMax"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "SWMin",
			usage: `
              SWMin is the residual volumetric water content [m3 m-3].`,
			defaultVal: soilDefault("ContentSoilData.SWMin"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "SWPExp",
			usage: `
              SWPExp is the exponential potential-response shape parameter
              [MPa-1].`,
			defaultVal: soilDefault("PotentialSoilData.SWPExp"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "WC1",
			usage: `
              WC1 is the volumetric content below which conductance is zero
              [m3 m-3].`,
			defaultVal: soilDefault("VolumetricSoilMethod.WC1"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "WC2",
			usage: `
              WC2 is the volumetric content above which conductance is
              unlimited [m3 m-3].`,
			defaultVal: soilDefault("VolumetricSoilMethod.WC2"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "SoilRoot",
			usage: `
              SoilRoot is the root-zone water store used with simulated
              soil data [m].`,
			defaultVal: soilDefault("VolumetricSoilMethod.SoilRoot"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "SoilDepth",
			usage: `
              SoilDepth is the root-zone depth used with simulated soil
              data [m].`,
			defaultVal: soilDefault("VolumetricSoilMethod.SoilDepth"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "PotentialDependence",
			usage: `
              PotentialDependence selects how assimilation is scaled by
              water potential. Valid options are none, linear, and zhou.`,
			shorthand:  "p",
			defaultVal: "none",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "VParA",
			usage: `
              VParA is the water potential at and below which assimilation
              is zero [kPa].`,
			defaultVal: potentialDefault("LinearPotentialDependence.VParA"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "VParB",
			usage: `
              VParB is the water potential at and above which assimilation
              is unlimited [kPa].`,
			defaultVal: potentialDefault("LinearPotentialDependence.VParB"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "S",
			usage: `
              S is the sensitivity of the Zhou logistic potential response
              [MPa-1].`,
			defaultVal: potentialDefault("ZhouPotentialDependence.S"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "PsiRef",
			usage: `
              PsiRef is the reference potential at which the Zhou response
              reaches half its maximum [MPa].`,
			defaultVal: potentialDefault("ZhouPotentialDependence.PsiRef"),
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ForcingFile",
			usage: `
              ForcingFile is the path to the CSV forcing series. It must
              have a "soilmoist" column and may have an "swp" column.
              The path can include environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), calibrateCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path the result CSV is written to. The path
              can include environment variables.`,
			defaultVal: "soilstress_out.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ObservedFile",
			usage: `
              ObservedFile is the path to a CSV observation series with an
              "fsoil" column, used for calibration. The path can include
              environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{calibrateCmd.Flags()},
		},
		{
			name: "Draws",
			usage: `
              Draws is the number of Monte-Carlo parameter draws evaluated
              during calibration.`,
			defaultVal: 1000,
			flagsets:   []*pflag.FlagSet{calibrateCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SOILSTRESS")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(calibrateCmd)
	Root.AddCommand(schemaCmd)
	Root.AddCommand(configCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("soilstress: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("soilstress: invalid log level: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// Config assembles a ConfigData from the current configuration state.
func Config() (*ConfigData, error) {
	c := &ConfigData{
		SoilMethod:          Cfg.GetString("SoilMethod"),
		SoilData:            Cfg.GetString("SoilData"),
		PotentialDependence: Cfg.GetString("PotentialDependence"),
		ForcingFile:         Cfg.GetString("ForcingFile"),
		OutputFile:          Cfg.GetString("OutputFile"),
	}
	// Numeric options may arrive as strings from environment variables
	// or the configuration file.
	for name, dst := range map[string]*float64{
		"SMD1":      &c.SMD1,
		"SMD2":      &c.SMD2,
		"SWMax":     &c.SWMax,
		"SWMin":     &c.SWMin,
		"SWPExp":    &c.SWPExp,
		"WC1":       &c.WC1,
		"WC2":       &c.WC2,
		"SoilRoot":  &c.SoilRoot,
		"SoilDepth": &c.SoilDepth,
		"VParA":     &c.VParA,
		"VParB":     &c.VParB,
		"S":         &c.S,
		"PsiRef":    &c.PsiRef,
	} {
		v, err := cast.ToFloat64E(Cfg.Get(name))
		if err != nil {
			return nil, fmt.Errorf("soilstress: configuration variable %s: %v", name, err)
		}
		*dst = v
	}
	c.ExpandEnv()
	return c, nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "soilstress",
	Short: "A soil-water limitation model for leaf gas exchange.",
	Long: `soilstress computes the dimensionless multipliers that scale stomatal
conductance and assimilation by soil-water status within a leaf
gas-exchange model.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'SOILSTRESS_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of soilstress.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("soilstress v%s\n", soilstress.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the model over a forcing series",
	Long: `run reads the CSV forcing series, applies the configured soil method
and potential dependence once per step, and writes the resulting
multipliers to the output CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run()
	},
	DisableAutoGenTag: true,
}

// Run executes a simulation from the current configuration.
func Run() error {
	c, err := Config()
	if err != nil {
		return err
	}
	m, err := c.BuildMethod()
	if err != nil {
		return err
	}
	pd, err := c.BuildPotential()
	if err != nil {
		return err
	}
	if c.ForcingFile == "" {
		return fmt.Errorf("soilstress: you need to specify a forcing file " +
			`(for example: ForcingFile="forcing.csv")`)
	}
	f, err := os.Open(c.ForcingFile)
	if err != nil {
		return fmt.Errorf("soilstress: opening forcing file: %v", err)
	}
	defer f.Close()
	forcing, err := ReadForcing(f)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"method": c.SoilMethod,
		"data":   c.SoilData,
		"steps":  len(forcing),
	}).Info("starting simulation")

	sim := &soilstress.Simulation{
		Method:    m,
		Potential: pd,
		State:     &soilstress.LeafState{},
	}
	results, err := sim.Run(forcing)
	if err != nil {
		return err
	}

	out, err := os.Create(c.OutputFile)
	if err != nil {
		return fmt.Errorf("soilstress: creating output file: %v", err)
	}
	defer out.Close()
	if err := WriteResults(out, results); err != nil {
		return err
	}
	logger.WithField("file", c.OutputFile).Info("simulation finished")
	return nil
}

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Fit soil parameters to an observed fsoil series",
	Long: `calibrate draws parameter sets from the prior distributions of the
configured soil method, simulates each over the forcing series, and
reports the set that best reproduces the observed fsoil series.
Only the deficit and volumetric methods have calibratable parameters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Calibrate()
	},
	DisableAutoGenTag: true,
}

// Calibrate fits the configured soil method's parameters to the
// observed fsoil series.
func Calibrate() error {
	c, err := Config()
	if err != nil {
		return err
	}

	var defs []params.Def
	var build calib.Builder
	switch strings.ToLower(c.SoilMethod) {
	case "deficit":
		defs, err = lookupDefs(params.Soil(), "DeficitSoilData.SMD1", "DeficitSoilData.SMD2")
		build = calib.DeficitBuilder()
	case "volumetric":
		defs, err = lookupDefs(params.Soil(), "VolumetricSoilMethod.WC1", "VolumetricSoilMethod.WC2")
		switch strings.ToLower(c.SoilData) {
		case "content":
			build = calib.VolumetricBuilder(c.contentData())
		case "simulated":
			build = calib.VolumetricBuilder(c.simulatedData())
		default:
			return fmt.Errorf("soilstressutil: the volumetric method takes soil data \"content\" or \"simulated\", not %q", c.SoilData)
		}
	default:
		return fmt.Errorf("soilstress: method %q has no calibratable parameters; valid options are deficit and volumetric", c.SoilMethod)
	}
	if err != nil {
		return err
	}

	if c.ForcingFile == "" {
		return fmt.Errorf("soilstress: you need to specify a forcing file " +
			`(for example: ForcingFile="forcing.csv")`)
	}
	f, err := os.Open(c.ForcingFile)
	if err != nil {
		return fmt.Errorf("soilstress: opening forcing file: %v", err)
	}
	defer f.Close()
	forcing, err := ReadForcing(f)
	if err != nil {
		return err
	}

	obsFile := os.ExpandEnv(Cfg.GetString("ObservedFile"))
	if obsFile == "" {
		return fmt.Errorf("soilstress: you need to specify an observation file " +
			`(for example: ObservedFile="observed.csv")`)
	}
	of, err := os.Open(obsFile)
	if err != nil {
		return fmt.Errorf("soilstress: opening observation file: %v", err)
	}
	defer of.Close()
	obs, err := ReadObserved(of)
	if err != nil {
		return err
	}

	draws := Cfg.GetInt("Draws")
	logger.WithFields(logrus.Fields{
		"method": c.SoilMethod,
		"steps":  len(forcing),
		"draws":  draws,
	}).Info("starting calibration")

	best, err := calib.Fit(defs, build, forcing, obs, draws)
	if err != nil {
		return err
	}
	for i, d := range defs {
		logger.WithFields(logrus.Fields{
			"parameter": d.Name,
			"value":     best.Params[i],
			"units":     d.Units,
		}).Info("calibrated parameter")
	}
	logger.WithFields(logrus.Fields{
		"rmse": best.Stats.RMSE,
		"bias": best.Stats.Bias,
		"r2":   best.Stats.RSquared,
	}).Info("calibration finished")
	return nil
}

func lookupDefs(table []params.Def, names ...string) ([]params.Def, error) {
	defs := make([]params.Def, len(names))
	for i, name := range names {
		d, err := params.Lookup(table, name)
		if err != nil {
			return nil, err
		}
		defs[i] = d
	}
	return defs, nil
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the parameter metadata tables",
	Long: `schema prints the name, units, default, bounds, and description of
every tunable parameter.`,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tUNITS\tDEFAULT\tMIN\tMAX\tDESCRIPTION")
		for _, d := range append(params.Soil(), params.Potential()...) {
			fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%s\n",
				d.Name, d.Units, d.Default, d.Min, d.Max, d.Description)
		}
		w.Flush()
	},
	DisableAutoGenTag: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the current configuration as TOML",
	Long: `config resolves the current configuration (defaults, configuration
file, environment, and flags) and prints it in TOML format, suitable
for use as a configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := Config()
		if err != nil {
			return err
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(c)
	},
	DisableAutoGenTag: true,
}
