package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cafe-pos/internal/catalog"
	"cafe-pos/internal/model"
)

// Writes the built-in menus as catalog files, so they can be edited and
// loaded through KIOSK_CATALOG_FILE / TERMINAL_MENU_FILE or uploaded to the
// catalog bucket.
//
//	data/menus/kiosk.json       plain JSON
//	data/menus/kiosk.json.gz    gzipped JSON
//	data/menus/terminal.json
//	data/menus/terminal.json.gz
func main() {
	dataDir := "data/menus"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	menus := map[string][]model.CatalogItem{
		"kiosk":    catalog.KioskSeed(),
		"terminal": catalog.TerminalSeed(),
	}

	for name, items := range menus {
		for _, gz := range []bool{false, true} {
			filename := name + ".json"
			if gz {
				filename += ".gz"
			}
			filePath := filepath.Join(dataDir, filename)

			if err := writeMenu(filePath, items, gz); err != nil {
				log.Fatalf("Failed to create %s: %v", filename, err)
			}

			fmt.Printf("Created %s with %d items\n", filePath, len(items))
		}
	}

	fmt.Println("\nSample menu files created successfully!")
}

func writeMenu(path string, items []model.CatalogItem, gz bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := catalog.WriteJSON(file, items, gz); err != nil {
		file.Close()
		return fmt.Errorf("failed to write menu: %w", err)
	}

	return file.Close()
}
