package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/rando"
	"github.com/tutils/rando/prng/lcg"
)

// lcgCmd represents the lcg command
var lcgCmd = &cobra.Command{
	Use:   "lcg",
	Short: "Draw from the linear congruential generator",
	Long: `Print LCG outputs reduced modulo --modulus, For example:
  rando lcg --seed=5 --count=10
  rando lcg --seed=5 --reseed=434`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{
			"count":   "count",
			"modulus": "modulus",
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := resolveSeed(cmd, rando.KindLCG)
		if err != nil {
			return err
		}
		if len(seed) == 0 {
			return fmt.Errorf("no lcg seed given")
		}

		g := lcg.New(seed[0])
		count, modulus := viper.GetInt("count"), viper.GetUint32("modulus")
		if count < 0 {
			return fmt.Errorf("count must not be negative")
		}
		log := Logger().With("kind", rando.KindLCG.String())
		log.Debugf("seed %d, count %d, modulus %d", g.Seed(), count, modulus)

		out := cmd.OutOrStdout()
		printDraws(out, rando.Draw(g, count, modulus))

		if cmd.Flags().Changed("reseed") {
			// Reseed records the seed only; the draws continue from the
			// current state.
			g.Reseed(lcgReseed)
			log.Debugf("reseeded: seed %d, state %d", g.Seed(), g.State())
			fmt.Fprintln(out)
			printDraws(out, rando.Draw(g, count, modulus))
		}
		return nil
	},
}

var (
	lcgReseed uint32
)

func init() {
	rootCmd.AddCommand(lcgCmd)

	flags := lcgCmd.Flags()
	addSeedFlags(flags, "lcg seed (first word is used)")
	flags.Uint32Var(&lcgReseed, "reseed", 0, "reseed after the first batch and draw again")
	flags.IntP("count", "n", 10, "values per batch")
	flags.Uint32P("modulus", "m", 100, "reduce values modulo m (0 prints raw values)")
}
