package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/rando"
	"github.com/tutils/rando/crypt/xor"
)

// xorCmd represents the xor command
var xorCmd = &cobra.Command{
	Use:   "xor",
	Short: "Xor stdin with a generator keystream",
	Long: `Xor stdin with a keystream drawn from a generator and write the result
to stdout. Applying it twice with the same key restores the input. This is
obfuscation, not encryption. For example:
  rando xor --kind=lfsr --crypt-key=816559 < notes.txt > notes.x
  rando xor --kind=lfsr --crypt-key=816559 --decode < notes.x`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{
			"kind":      "xor.kind",
			"crypt-key": "xor.key",
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := rando.ParseKind(viper.GetString("xor.kind"))
		if err != nil {
			return err
		}

		c := xor.NewCrypt(viper.GetInt64("xor.key"))
		newer := xor.SourceNewer(kind)
		in, out := cmd.InOrStdin(), cmd.OutOrStdout()

		var n int64
		if xorDecode {
			n, err = io.Copy(out, c.NewDecoder(in, xor.WithDecoderRandomSourceNewer(newer)))
		} else {
			n, err = io.Copy(c.NewEncoder(out, xor.WithEncoderRandomSourceNewer(newer)), in)
		}
		Logger().With("kind", kind.String()).Debugf("xor %d bytes", n)
		return err
	},
}

var (
	xorDecode bool
)

const defaultXorCryptSeed = 98545715754651

func init() {
	rootCmd.AddCommand(xorCmd)

	flags := xorCmd.Flags()
	flags.StringP("kind", "k", "lcg", "keystream generator: lcg or lfsr")
	flags.Int64P("crypt-key", "K", defaultXorCryptSeed, "crypt key")
	flags.BoolVarP(&xorDecode, "decode", "d", false, "read through the decoder instead of the encoder")
}
