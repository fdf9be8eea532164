package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/rando"
	"github.com/tutils/rando/prng/lfsr"
)

// lfsrCmd represents the lfsr command
var lfsrCmd = &cobra.Command{
	Use:   "lfsr",
	Short: "Draw from the additive feedback generator",
	Long: `Print additive feedback generator outputs reduced modulo --modulus. The
seed vector needs at least 3 words; its length picks the table degree.
For example:
  rando lfsr --seed=3,434,545,45,5454,6454,4545,232424,52345235,35434534,2342341 --count=17
  rando lfsr --uuid`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{
			"count":   "count",
			"modulus": "modulus",
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := resolveSeed(cmd, rando.KindLFSR)
		if err != nil {
			return err
		}

		g, err := lfsr.New(seed)
		if err != nil {
			return err
		}

		count, modulus := viper.GetInt("count"), viper.GetUint32("modulus")
		if count < 0 {
			return fmt.Errorf("count must not be negative")
		}
		Logger().With("kind", rando.KindLFSR.String()).
			Debugf("seed words %d, degree %d, separation %d", len(seed), g.Degree(), g.Separation())

		printDraws(cmd.OutOrStdout(), rando.Draw(g, count, modulus))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lfsrCmd)

	flags := lfsrCmd.Flags()
	addSeedFlags(flags, "seed vector, comma separated")
	flags.IntP("count", "n", 10, "values to draw")
	flags.Uint32P("modulus", "m", 100, "reduce values modulo m (0 prints raw values)")
}

func printDraws(w io.Writer, values []uint32) {
	for _, v := range values {
		fmt.Fprintf(w, "Rand num %d\n", v)
	}
}
