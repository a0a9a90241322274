package main

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kungfusheep/ferry/schema"
)

// maxOpenFiles bounds concurrent schema reads.
const maxOpenFiles = 8

// readSchemas loads every file concurrently. Contents come back in argument
// order so records are always compiled in the same order.
func readSchemas(ctx context.Context, paths []string) ([][]byte, error) {
	srcs := make([][]byte, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxOpenFiles)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrap(err, "read schema")
			}
			srcs[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return srcs, nil
}

// parseSchemas feeds every file to h in argument order, stopping at the
// first error.
func parseSchemas(ctx context.Context, log *zap.Logger, paths []string, h schema.Handler) error {
	if len(paths) == 0 {
		return errors.New("no schema files given")
	}
	srcs, err := readSchemas(ctx, paths)
	if err != nil {
		return err
	}
	for i, path := range paths {
		if err := schema.ParseBytes(path, srcs[i], h); err != nil {
			return err
		}
		log.Info("schema parsed", zap.String("file", path), zap.Int("bytes", len(srcs[i])))
	}
	return nil
}
