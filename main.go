package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/felo/mbox-to-pdf/internal/config"
	"github.com/felo/mbox-to-pdf/internal/converter"
	"github.com/felo/mbox-to-pdf/internal/pdf"
	"github.com/felo/mbox-to-pdf/internal/scanner"
)

func main() {
	cfg := config.Default()

	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory for the generated PDFs")
	flag.StringVar(&cfg.Strategy, "group", cfg.Strategy, "date grouping strategy: month, quarter or year")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Usage = usage
	flag.Parse()
	cfg.Verbose = !*quiet

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	if !pdf.Available() {
		log.Fatalf("wkhtmltopdf not found on PATH; install it to generate PDFs")
	}

	mboxPaths, err := collectMboxPaths(flag.Args())
	if err != nil {
		log.Fatalf("Failed to collect mbox files: %v", err)
	}
	if len(mboxPaths) == 0 {
		log.Fatalf("No mbox files found in the given paths")
	}

	log.Printf("Converting %d mbox file(s) into %s (grouped by %s)", len(mboxPaths), cfg.OutputDir, cfg.Strategy)

	var progress converter.ProgressFunc
	if cfg.Verbose {
		progress = func(current, total int, message string) {
			log.Printf("[%3d%%] %s", current*100/total, message)
		}
	}

	result := converter.Convert(mboxPaths, cfg.OutputDir, cfg.Strategy, progress)

	log.Printf("Emails processed: %d", result.EmailsProcessed)
	log.Printf("PDFs created: %d", result.PDFsCreated)
	for _, path := range result.CreatedFiles {
		log.Printf("  %s", path)
	}
	for _, msg := range result.Errors {
		log.Printf("Error: %s", msg)
	}
	for _, info := range result.AttachmentErrors {
		log.Printf("Attachment issue [%s] %s in %q: %s",
			info.ErrorType, info.Filename, info.EmailSubject, info.ErrorMessage)
	}

	if !result.Success {
		os.Exit(1)
	}
}

// collectMboxPaths expands the command-line arguments: files are taken
// as-is, directories are scanned recursively for .mbox files.
func collectMboxPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if info.IsDir() {
			found, err := scanner.NewScanner(arg).Scan()
			if err != nil {
				return nil, err
			}
			paths = append(paths, found...)
			continue
		}
		abs, err := filepath.Abs(arg)
		if err != nil {
			abs = arg
		}
		paths = append(paths, abs)
	}
	return paths, nil
}

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, strings.TrimLeft(`
Usage: %s [flags] <mbox file or Takeout directory> ...

Converts Gmail Takeout mbox exports into date-grouped PDF archives, one
PDF per month, quarter or year. Duplicate messages across label folders
are removed by Message-ID.

Flags:
`, "\n"), prog)
	flag.PrintDefaults()
}
