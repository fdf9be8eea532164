package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tutils/rando"
)

// newUUID is the --uuid value meaning "make one up".
const newUUID = "new"

// parseSeedWords accepts words split across elements, commas or whitespace,
// in decimal or 0x hex.
func parseSeedWords(elems []string) ([]uint32, error) {
	var words []uint32
	for _, e := range elems {
		for _, f := range strings.FieldsFunc(e, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		}) {
			w, err := strconv.ParseUint(f, 0, 32)
			if err != nil {
				return nil, fmt.Errorf("bad seed word %q: %w", f, err)
			}
			words = append(words, uint32(w))
		}
	}
	return words, nil
}

// uuidSeed turns a --uuid value into seed words. A fresh UUID is logged so
// the run can be repeated.
func uuidSeed(s string) ([]uint32, error) {
	var u uuid.UUID
	if s == newUUID {
		u = uuid.New()
		Logger().Infof("seeding from new uuid %s", u)
	} else {
		var err error
		if u, err = uuid.Parse(s); err != nil {
			return nil, fmt.Errorf("bad seed uuid: %w", err)
		}
	}
	return rando.UUIDSeed(u), nil
}

// addSeedFlags registers --seed and --uuid on cmd.
func addSeedFlags(flags *pflag.FlagSet, usage string) {
	flags.StringSlice("seed", nil, usage)
	flags.String("uuid", "", "derive the seed from a uuid (no value: a new random one)")
	flags.Lookup("uuid").NoOptDefVal = newUUID
}

// resolveSeed picks --uuid, then --seed, then the configured <kind>.seed.
func resolveSeed(cmd *cobra.Command, kind rando.Kind) ([]uint32, error) {
	flags := cmd.Flags()
	if u, _ := flags.GetString("uuid"); u != "" {
		return uuidSeed(u)
	}
	if flags.Changed("seed") {
		s, _ := flags.GetStringSlice("seed")
		return parseSeedWords(s)
	}
	return parseSeedWords(viper.GetStringSlice(kind.String() + ".seed"))
}

// bindFlags binds flag names to viper keys for the command being run. Done
// at run time because several commands share key names.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for name, key := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
