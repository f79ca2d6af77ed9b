package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fastfood/internal/model"

	"github.com/shopspring/decimal"
)

// main writes a sample menu in JSON Lines form for SEED_FILE.
// A path ending in .gz is gzip-compressed.
func main() {
	out := flag.String("out", "data/menu.jsonl", "output path")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	menu := sampleMenu()
	if err := writeMenu(*out, menu); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d products\n", *out, len(menu))
}

func sampleMenu() []model.ProductInput {
	item := func(name, description string, price int64, category, image string) model.ProductInput {
		p := decimal.NewFromInt(price)
		return model.ProductInput{
			Name:        name,
			Description: description,
			Price:       &p,
			Category:    category,
			Image:       &image,
			Available:   true,
		}
	}

	return []model.ProductInput{
		item("Clásica", "Hamburguesa de vacuno con queso y tocino", 4990, model.CategoryBurger, "img/clasica.jpg"),
		item("Americana", "Hamburguesa con cebolla caramelizada y pepinillos", 5490, model.CategoryBurger, "img/americana.jpg"),
		item("Italiana", "Hamburguesa con palta, tomate y mayonesa", 5290, model.CategoryBurger, "img/italiana.jpg"),
		item("Papas medianas", "Papas fritas porción mediana", 1990, model.CategoryFries, "img/papas-medianas.jpg"),
		item("Papas grandes", "Papas fritas porción grande", 2500, model.CategoryFries, "img/papas-grandes.jpg"),
		item("Bebida 500ml", "Bebida en lata o botella de 500ml", 1500, model.CategoryDrink, "img/bebida.png"),
		item("Jugo natural", "Jugo natural de frutas de la estación", 2200, model.CategoryDrink, "img/jugo.png"),
		item("Helado", "Helado de vainilla en copa con salsa", 1990, model.CategoryDessert, "img/helado.webp"),
	}
}

func writeMenu(path string, menu []model.ProductInput) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		w = gzipWriter
	}

	enc := json.NewEncoder(w)
	for _, p := range menu {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("failed to write product: %w", err)
		}
	}

	return nil
}
