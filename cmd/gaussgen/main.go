// Command gaussgen writes a deterministic 1-D Gaussian cluster dataset.
//
//	gaussgen [-n 1000000] [-k 16] [-out DEST] [-compress none|zstd|lz4]
//	         [-manifest] [-ddb-table TABLE] [-log-format text|json] [-v]
//
// DEST is a directory (default: the directory of the executable),
// s3://bucket/prefix or minio://host:port/bucket/prefix.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/gaussgen"
	"github.com/hupe1980/gaussgen/codec"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr, os.Getenv); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer, getenv func(string) string) error {
	fs := flag.NewFlagSet("gaussgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	n := fs.Int("n", gaussgen.DefaultPoints, "total number of points")
	k := fs.Int("k", gaussgen.DefaultClusters, "number of clusters")
	out := fs.String("out", "", "destination directory, s3://bucket/prefix or minio://host:port/bucket/prefix")
	compress := fs.String("compress", "none", "artifact compression: none, zstd or lz4")
	withManifest := fs.Bool("manifest", false, "also write MANIFEST.json and commit CURRENT")
	ddbTable := fs.String("ddb-table", "", "DynamoDB table for committing CURRENT (s3 destinations only)")
	logFormat := fs.String("log-format", "text", "log format: text or json")
	verbose := fs.Bool("v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(*logFormat, *verbose, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	c, err := codec.ParseCompression(*compress)
	if err != nil {
		logger.Error("invalid flag", "flag", "compress", "error", err)
		return err
	}

	dest, err := parseDestination(*out)
	if err != nil {
		logger.Error("invalid destination", "out", *out, "error", err)
		return err
	}

	store, err := openStore(ctx, dest, *ddbTable, getenv)
	if err != nil {
		logger.Error("opening destination failed", "out", dest.String(), "error", err)
		return err
	}
	logger.Info("writing dataset", "destination", dest.String())

	opts := []gaussgen.Option{
		gaussgen.WithPoints(*n),
		gaussgen.WithClusters(*k),
		gaussgen.WithCompression(c),
		gaussgen.WithLogger(logger),
	}
	if *withManifest {
		opts = append(opts, gaussgen.WithManifest())
	}

	if _, err := gaussgen.Generate(ctx, store, opts...); err != nil {
		logger.Error("generation failed", "error", err)
		return err
	}
	return nil
}

var errLogFormat = errors.New("log format must be text or json")

func newLogger(format string, verbose bool, w io.Writer) (*gaussgen.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	switch format {
	case "text":
		return gaussgen.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return gaussgen.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errLogFormat
	}
}
