package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge concatenates the pages of the given PDFs, in order, into a single
// output file.
func Merge(paths []string, outPath string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no PDFs to merge")
	}
	if err := api.MergeCreateFile(paths, outPath, false, nil); err != nil {
		return fmt.Errorf("failed to merge PDFs: %w", err)
	}
	return nil
}

// PageCount returns the number of pages in a PDF file.
func PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}
