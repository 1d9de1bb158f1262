package cosmographia

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _cgconfig{}
)

// _cgconfig is a "hidden" struct, just use `cgConfig`
type _cgconfig struct {
	outputDir string
}

// cgConfig returns the export configuration. It is read once from the
// conf.toml found via the COSMOGRAPHIA_CONFIG environment variable; without
// it, exported files land in the working directory.
func cgConfig() _cgconfig {
	if cfgLoaded {
		return config
	}
	config = _cgconfig{outputDir: "."}
	confPath := os.Getenv("COSMOGRAPHIA_CONFIG")
	if confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		if outputDir := viper.GetString("general.output_path"); outputDir != "" {
			config.outputDir = outputDir
		}
	}
	cfgLoaded = true
	return config
}
