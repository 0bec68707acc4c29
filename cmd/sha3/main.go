// Command sha3 prints the hex SHA-3 digest of a string or of files.
//
// Usage:
//
//	sha3 [--algo 224|256|384|512] --string TEXT
//	sha3 [--algo 224|256|384|512] --path FILE [--path FILE ...]
//	sha3 --test
//
// Every flag can also be set through an environment variable named
// SHA3_<FLAG>, e.g. SHA3_ALGO=512.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Giulio2002/sha3"
)

var log = logging.Logger("sha3")

var (
	errNoInput          = errors.New("no input provided; use --string, --path or --test")
	errConflictingInput = errors.New("use only one of --string, --path or --test")
	errUnsupportedAlgo  = errors.New("unsupported algorithm; provide '224', '256', '384' or '512'")
)

const (
	stringFlag    = "string"
	pathFlag      = "path"
	algoFlag      = "algo"
	testFlag      = "test"
	jobsFlag      = "jobs"
	verbosityFlag = "verbosity"
)

// newApp builds the command with its own flag values. urfave/cli stores
// env-derived values in the flag structs, so they are never shared.
func newApp() *cli.App {
	return &cli.App{
		Name:    "sha3",
		Usage:   "SHA3-224, 256, 384 and 512",
		Version: "0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    stringFlag,
				Usage:   "text to hash",
				EnvVars: []string{"SHA3_STRING"},
			},
			&cli.StringSliceFlag{
				Name:    pathFlag,
				Usage:   "file to hash; repeat for several files",
				EnvVars: []string{"SHA3_PATH"},
			},
			&cli.StringFlag{
				Name:    algoFlag,
				Usage:   "digest size in bits: 224, 256, 384 or 512",
				Value:   "256",
				EnvVars: []string{"SHA3_ALGO"},
			},
			&cli.BoolFlag{
				Name:    testFlag,
				Usage:   "run the built-in test vectors",
				EnvVars: []string{"SHA3_TEST"},
			},
			&cli.IntFlag{
				Name:    jobsFlag,
				Usage:   "number of files hashed concurrently",
				Value:   runtime.NumCPU(),
				EnvVars: []string{"SHA3_JOBS"},
			},
			&cli.StringFlag{
				Name:    verbosityFlag,
				Usage:   "log level: error, warn, info or debug",
				Value:   "info",
				EnvVars: []string{"SHA3_VERBOSITY"},
			},
		},
		Action: run,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if err := logging.SetLogLevel("sha3", ctx.String(verbosityFlag)); err != nil {
		return errors.Wrap(err, "invalid --verbosity")
	}

	var (
		text  = ctx.IsSet(stringFlag)
		paths = ctx.StringSlice(pathFlag)
		test  = ctx.Bool(testFlag)
	)
	inputs := 0
	for _, set := range []bool{text, len(paths) > 0, test} {
		if set {
			inputs++
		}
	}
	switch {
	case inputs == 0:
		return errNoInput
	case inputs > 1:
		return errConflictingInput
	}

	// --algo is validated even under --test, which ignores the size.
	size, err := parseAlgo(ctx.String(algoFlag))
	if err != nil {
		return err
	}

	out := ctx.App.Writer
	if test {
		return runSelfTest(out, selfTestVectors)
	}
	if !ctx.IsSet(algoFlag) {
		log.Info("no algorithm specified; assuming SHA3-256")
	}

	if text {
		digest, err := sha3.HashString(ctx.String(stringFlag), size)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, digest)
		return nil
	}

	digests, err := hashFiles(ctx.Context, paths, size, ctx.Int(jobsFlag))
	if err != nil {
		return err
	}
	if len(paths) == 1 {
		fmt.Fprintln(out, digests[0])
		return nil
	}
	for i, path := range paths {
		fmt.Fprintf(out, "%s  %s\n", digests[i], path)
	}
	return nil
}

// parseAlgo turns an --algo value into a digest size in bits.
func parseAlgo(s string) (int, error) {
	size, err := strconv.Atoi(s)
	if err != nil || !sha3.Supported(size) {
		return 0, errors.Wrapf(errUnsupportedAlgo, "%q", s)
	}
	return size, nil
}

// hashFiles hashes every path with at most jobs files in flight. Digests are
// returned in the order of paths. The first failure cancels the rest.
func hashFiles(ctx context.Context, paths []string, size, jobs int) ([]string, error) {
	digests := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "unable to read %s", path)
			}
			digest, err := sha3.Hash(data, size)
			if err != nil {
				return err
			}
			log.Debugw("hashed file", "path", path, "bytes", len(data), "size", size)
			digests[i] = digest
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}
