package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/noximus/cosmographia"
	"github.com/soniakeys/meeus/julian"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and exports the
// requested satellite trajectories.

const (
	defaultScenario = "~~unset~~"
)

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "trajectory scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read plot parameters
	startDT := confReadJDEorTime("plot.start")
	endDT := confReadJDEorTime("plot.end")
	step := viper.GetDuration("plot.step")
	if verbose {
		log.Printf("[conf] plotting %s -> %s step %s\n", startDT, endDT, step)
	}
	conf := cosmographia.ExportConfig{
		Cosmo:     viper.GetBool("export.cosmo"),
		AsCSV:     viper.GetBool("export.csv"),
		Timestamp: viper.GetBool("export.timestamp"),
	}

	// Read satellites
	names := viper.GetStringSlice("plot.satellites")
	if len(names) == 0 {
		names = []string{"Miranda", "Ariel", "Umbriel", "Titania", "Oberon"}
	}
	for _, name := range names {
		sat, err := cosmographia.SatelliteFromString(name)
		if err != nil {
			log.Fatalf("could not understand satellite `%s`: %s", name, err)
		}
		orbit := cosmographia.NewGust86Orbit(sat)
		if verbose {
			log.Printf("exporting %s (bounding radius %.0f km)", orbit, orbit.BoundingRadius())
		}
		conf.Filename = strings.ToLower(sat.String())
		if err := cosmographia.ExportTrajectory(orbit, startDT, endDT, step, conf); err != nil {
			log.Fatalf("export of %s failed: %s", sat, err)
		}
	}
}

func confReadJDEorTime(key string) (dt time.Time) {
	jde := viper.GetFloat64(key)
	if jde == 0 {
		dt = viper.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return
}
