package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/meteor-dodge/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in default configuration as YAML.

Save it to ~/.meteors/configs/meteors.yaml or ./configs/meteors.yaml
to change it, or pass a file with --config.

With --effective, prints the configuration after --config and
--difficulty have been applied.

Examples:
  meteors config > ~/.meteors/configs/meteors.yaml
  meteors config --effective --difficulty hard`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the configuration in effect")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fatal("encoding config: %v", err)
	}
	enc.Close()
}
