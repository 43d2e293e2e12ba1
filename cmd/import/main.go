// Command import seeds the catalog file from a supplier product-listing
// HTML page, fetched over HTTP or read from disk.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/techstore/assistant/internal/catalog"
	"github.com/techstore/assistant/internal/domain"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	source := flag.String("source", "", "listing URL or local HTML file")
	out := flag.String("out", "database/products.json", "output catalog file")
	flag.Parse()

	if *source == "" {
		slog.Error("missing -source")
		os.Exit(1)
	}

	importer := catalog.NewImporter()

	var products []domain.Product
	var err error
	if strings.HasPrefix(*source, "http://") || strings.HasPrefix(*source, "https://") {
		products, err = importer.Fetch(context.Background(), *source)
	} else {
		var f *os.File
		f, err = os.Open(*source)
		if err == nil {
			products, err = importer.Parse(f)
			f.Close()
		}
	}
	if err != nil {
		slog.Error("import failed", "error", err, "source", *source)
		os.Exit(1)
	}

	if err := catalog.WriteJSON(*out, products); err != nil {
		slog.Error("write catalog failed", "error", err, "path", *out)
		os.Exit(1)
	}

	slog.Info("catalog imported", "products", len(products), "path", *out)
}
