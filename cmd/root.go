package cmd

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rando",
	Short: "Deterministic pseudo-random generators.",
	Long: `Deterministic pseudo-random generators: a 32-bit LCG and an additive
feedback generator of the random() family. Neither is fit for security use.
For example:
  rando lcg --seed=5 --reseed=434
  rando lfsr --seed=3,434,545,45,5454,6454,4545,232424,52345235,35434534,2342341
  rando stream --kind=lfsr --uuid --bytes=1MB > out.bin`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() { _ = Logger().Sync() }()

	if err := rootCmd.Execute(); err != nil {
		Logger().Errorf("%s", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	viper.SetDefault("lcg.seed", "5")
	viper.SetDefault("lfsr.seed", "3,434,545,45,5454,6454,4545,232424,52345235,35434534,2342341")
	viper.SetDefault("count", 10)
	viper.SetDefault("modulus", 100)
	viper.SetDefault("log.level", "info")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rando.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("log-dev", false, "human friendly development logging")
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("log.dev", flags.Lookup("log-dev"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			Logger().Errorf("%s", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".rando" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".rando")
	}

	viper.SetEnvPrefix("rando")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		configUsed = viper.ConfigFileUsed()
	} else if cfgFile != "" {
		Logger().Errorf("error reading config file: %s", err)
		os.Exit(1)
	}
}
