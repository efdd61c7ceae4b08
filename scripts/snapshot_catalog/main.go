package main

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// Writes a gzipped catalog snapshot used when the live sheet is unreachable.
// By default the live sheet is exported; -sample writes a small fixed catalog
// for local development.
func main() {
	out := flag.String("out", "data/catalog/snapshot.json.gz", "snapshot file to write")
	url := flag.String("url", "https://opensheet.elk.sh/1x2Rtyeyq3WR6yFybA8stGP0mdI2dlKvBz6fhx7FIjhQ/Sheet1", "catalog sheet URL")
	sample := flag.Bool("sample", false, "write the built-in sample catalog instead of fetching")
	flag.Parse()

	products := sampleProducts()
	if !*sample {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		products, err = catalog.NewSheetSource(*url, 20*time.Second, logger).Fetch(ctx)
		if err != nil {
			log.Fatalf("Failed to fetch catalog: %v", err)
		}
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	if err := writeSnapshot(*out, products); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Printf("Wrote %s with %d products\n", *out, len(products))
}

func writeSnapshot(filePath string, products []model.Product) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	if err := json.NewEncoder(gzipWriter).Encode(products); err != nil {
		return fmt.Errorf("failed to write products: %w", err)
	}

	return nil
}

func sampleProducts() []model.Product {
	return []model.Product{
		{
			Title: "Galaxy Buds3 Pro", Price: "3.999.000", SalePrice: "3.199.000", DiscountPercentage: "20",
			ImageLink: "https://picsum.photos/seed/buds-silver/600", AdditionalImageLink: "https://picsum.photos/seed/buds-case/600",
			Rating: "490", Sold: "2.1rb", ItemGroupID: "BUDS3PRO", FlashSale: "TRUE", EventTag: "flashsale",
			Category: "Audio", Color: "Silver", QuantityToSell: "64%",
		},
		{
			Title: "Galaxy Buds3 Pro", Price: "3.999.000", SalePrice: "3.199.000", DiscountPercentage: "20",
			ImageLink: "https://picsum.photos/seed/buds-white/600",
			Rating: "490", Sold: "2.1rb", ItemGroupID: "BUDS3PRO", Category: "Audio", Color: "White",
		},
		{
			Title: "Galaxy Watch7", Price: "4.499.000", ImageLink: "https://picsum.photos/seed/watch-40/600",
			Rating: "475", Sold: "830", ItemGroupID: "WATCH7", Category: "Wearable",
			Color: "Green", Size: "40mm", Connectivity: "Bluetooth", BandColor: "Green", BandType: "Sport Band",
		},
		{
			Title: "Galaxy Watch7", Price: "4.999.000", ImageLink: "https://picsum.photos/seed/watch-44/600",
			Rating: "475", Sold: "830", ItemGroupID: "WATCH7", Category: "Wearable",
			Color: "Silver", Size: "44mm", Connectivity: "Bluetooth", BandColor: "Silver", BandType: "Sport Band",
		},
		{
			Title: "Galaxy Watch7", Price: "5.799.000", ImageLink: "https://picsum.photos/seed/watch-44-lte/600",
			Rating: "475", Sold: "830", ItemGroupID: "WATCH7", Category: "Wearable",
			Color: "Silver", Size: "44mm", Connectivity: "LTE", BandColor: "Silver", BandType: "Sport Band",
		},
		{
			Title: "25W Travel Adapter", Price: "299.000", SalePrice: "249.000", ImageLink: "https://picsum.photos/seed/adapter/600",
			Rating: "480", Sold: "12.400", ItemGroupID: "TA25W", EventTag: "flashsale", Category: "Accessories",
			Color: "Black", QuantityToSell: "91%",
		},
	}
}
