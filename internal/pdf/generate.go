// Package pdf wraps the PDF backends: wkhtmltopdf for HTML rendering and
// pdfcpu for page-level post-processing (stamping and merging).
package pdf

import (
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/felo/mbox-to-pdf/internal/render"
)

// Available reports whether the wkhtmltopdf binary can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("wkhtmltopdf")
	return err == nil
}

// Generate renders an HTML fragment to a PDF file at outPath.
//
// The fragment is wrapped in a full document with the embedded print
// stylesheet. Embedded data URIs are first extracted to image files under
// imageTempDir and replaced with file references; the backend cannot
// reliably inline large data URIs. The caller owns cleanup of both the
// temp directory and, on error, the output path.
func Generate(htmlFragment, outPath, imageTempDir string) error {
	if imageTempDir != "" {
		rewritten, err := rewriteDataURIs(htmlFragment, imageTempDir)
		if err != nil {
			return fmt.Errorf("failed to extract embedded images: %w", err)
		}
		htmlFragment = rewritten
	}

	fullHTML := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    %s
</head>
<body>
    %s
</body>
</html>
`, render.Styles, htmlFragment)

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("failed to initialize PDF generator: %w", err)
	}
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeLetter)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(fullHTML))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return fmt.Errorf("PDF generation failed: %w", err)
	}
	if err := pdfg.WriteFile(outPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

var dataURIPattern = regexp.MustCompile(`data:([a-zA-Z0-9.+-]+/[a-zA-Z0-9.+-]+);base64,([A-Za-z0-9+/=]+)`)

// rewriteDataURIs writes every base64 data URI in the HTML to an image
// file under dir and replaces it with a file:// reference. URIs that fail
// to decode are left in place.
func rewriteDataURIs(htmlContent, dir string) (string, error) {
	if !dataURIPattern.MatchString(htmlContent) {
		return htmlContent, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	counter := 0
	result := dataURIPattern.ReplaceAllStringFunc(htmlContent, func(uri string) string {
		m := dataURIPattern.FindStringSubmatch(uri)
		data, err := base64.StdEncoding.DecodeString(m[2])
		if err != nil {
			return uri
		}

		counter++
		path := filepath.Join(dir, fmt.Sprintf("image_%d%s", counter, imageExtension(m[1])))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return uri
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		return "file://" + abs
	})
	return result, nil
}

// imageExtension infers a file extension from the MIME subtype.
func imageExtension(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "jpeg"), strings.Contains(mimeType, "jpg"):
		return ".jpg"
	case strings.Contains(mimeType, "gif"):
		return ".gif"
	case strings.Contains(mimeType, "webp"):
		return ".webp"
	default:
		return ".png"
	}
}
