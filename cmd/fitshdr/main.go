// Diagnostic tool for dumping FITS primary headers
package main

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-fits/fits"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: fitshdr <file.fits>")
		os.Exit(1)
	}

	filename := os.Args[1]

	f, err := fits.Open(filename)
	if err != nil {
		fmt.Printf("ERROR: Failed to open file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	fmt.Printf("=== %s ===\n", filename)
	fmt.Printf("Shape:  %v\n", f.Shape())
	fmt.Printf("Bitpix: %s\n", f.Bitpix())
	fmt.Printf("Data:   %d bytes\n", f.DataSize())
	fmt.Println()

	for _, card := range f.Header().Cards() {
		if card.Value == nil {
			fmt.Printf("%-8s  %s\n", card.Keyword, card.Comment)
			continue
		}
		if card.Comment != "" {
			fmt.Printf("%-8s= %v / %s\n", card.Keyword, card.Value, card.Comment)
			continue
		}
		fmt.Printf("%-8s= %v\n", card.Keyword, card.Value)
	}
}
