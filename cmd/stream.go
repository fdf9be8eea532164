package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/rando"
	"github.com/tutils/rando/counter"
	"github.com/tutils/rando/counter/period"
	"golang.org/x/term"
)

// streamCmd represents the stream command
var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Write raw generator bytes to stdout",
	Long: `Write an endless (or --bytes long) byte stream, three bytes per output,
for feeding test suites. For example:
  rando stream --kind=lfsr --uuid --bytes=64MB | dieharder -a -g 200`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{
			"kind":  "stream.kind",
			"bytes": "stream.bytes",
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) && !streamForce {
			return fmt.Errorf("refusing to write binary to a terminal; redirect stdout or pass --force")
		}

		kind, err := rando.ParseKind(viper.GetString("stream.kind"))
		if err != nil {
			return err
		}
		seed, err := resolveSeed(cmd, kind)
		if err != nil {
			return err
		}
		g, err := rando.New(kind, seed)
		if err != nil {
			return err
		}

		size := int64(viper.GetSizeInBytes("stream.bytes"))

		log := Logger().With("kind", kind.String())
		c := period.NewPeriodCounter(time.Second)
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go reportRate(ctx, c, log.Infof)

		n, err := copyStream(&countingWriter{w: out, c: c}, rando.NewReader(g), size)
		log.Infof("wrote %d bytes", n)
		return err
	},
}

var (
	streamForce bool
)

func init() {
	rootCmd.AddCommand(streamCmd)

	flags := streamCmd.Flags()
	flags.StringP("kind", "k", "lfsr", "generator: lcg or lfsr")
	addSeedFlags(flags, "seed words, comma separated")
	flags.StringP("bytes", "b", "0", "stop after this many bytes, e.g. 4096, 16KB, 1GB (0 = until the reader goes away)")
	flags.BoolVarP(&streamForce, "force", "f", false, "write even when stdout is a terminal")
}

// copyStream copies size bytes, or everything when size is 0.
func copyStream(w io.Writer, r io.Reader, size int64) (int64, error) {
	if size > 0 {
		return io.CopyN(w, r, size)
	}
	return io.Copy(w, r)
}

type countingWriter struct {
	w io.Writer
	c counter.Counter
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.c.Add(int64(n))
	return n, err
}

func reportRate(ctx context.Context, c counter.Counter, logf func(string, ...interface{})) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logf("%d bytes, %d bytes/sec", c.Value(), c.RatePerSec())
		}
	}
}
