package chartinfo

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ReadFile reads one file into a Document.
//
// The content type is guessed from the file extension, so ".json" files get
// application/json and everything else is later rejected by Drop.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return Document{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// ReadFiles reads multiple files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any read
// fails, no documents are returned.
//
// Example:
//
//	docs, err := chartinfo.ReadFiles(ctx, "bopeebo-chart.json", "bopeebo-metadata.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, res, err := chartinfo.NewSession().Drop(docs...)
func ReadFiles(ctx context.Context, paths ...string) ([]Document, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]Document, len(paths))

	for i, path := range paths {
		i, path := i, path // per-iteration copy (Go 1.22 loop semantics)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			doc, err := ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
