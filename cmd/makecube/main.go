// makecube writes a synthetic zero-filled FITS image cube with a valid
// world coordinate system, for use as a pipeline test fixture.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-fits/cube"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		numDims  int
		outDir   string
		profile  string
		gzipOut  bool
		checksum bool
		verbose  bool
	)

	flagSet := pflag.NewFlagSet("makecube", pflag.ContinueOnError)
	flagSet.IntVarP(&numDims, "num-dimensions", "n", 3, "number of dimensions for the array (2, 3, or 4)")
	flagSet.StringVarP(&outDir, "output-dir", "o", ".", "directory to write the cube into")
	flagSet.StringVarP(&profile, "profile", "p", "", "YAML cube profile overriding the default sizes")
	flagSet.BoolVar(&gzipOut, "gzip", false, "gzip the output (.fits.gz)")
	flagSet.BoolVar(&checksum, "checksum", false, "add CHECKSUM/DATASUM header cards")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	log, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	opts := []cube.Option{
		cube.WithDir(outDir),
		cube.WithLogger(log),
	}
	if profile != "" {
		p, err := cube.LoadProfile(profile)
		if err != nil {
			return err
		}
		opts = append(opts, cube.WithProfile(p))
	}
	if gzipOut {
		opts = append(opts, cube.WithGzip())
	}
	if checksum {
		opts = append(opts, cube.WithChecksum())
	}

	_, err = cube.Generate(numDims, opts...)
	return err
}

// newLogger builds a console logger; --verbose switches to the
// development config at debug level.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableCaller = true
	return cfg.Build()
}
