// Package converter orchestrates the full mbox-to-PDF pipeline: parse,
// deduplicate, group by date, render, generate, stamp and merge.
package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felo/mbox-to-pdf/internal/parser"
	"github.com/felo/mbox-to-pdf/internal/pdf"
	"github.com/felo/mbox-to-pdf/internal/render"
)

// ProgressFunc receives coarse progress milestones. It is invoked
// synchronously on the calling goroutine; callers that need delivery
// elsewhere (e.g. a UI loop) marshal it themselves.
type ProgressFunc func(current, total int, message string)

// Convert runs the full pipeline over the given mbox files and writes one
// PDF per date group into outputDir.
//
// Per-email and per-group failures never abort the run; they are recorded
// in the result's error list and processing continues. Only a total parse
// failure or an invalid grouping strategy ends the run early, and both are
// reported through the result. Convert never panics.
func Convert(mboxPaths []string, outputDir, strategy string, progress ProgressFunc) *Result {
	result := &Result{}

	report := func(current int, message string) {
		if progress != nil {
			progress(current, 100, message)
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to create output directory: %v", err))
		return result
	}

	report(0, "Parsing mbox files...")

	emails, err := parser.MergeAndDeduplicate(mboxPaths)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to parse mbox files: %v", err))
		return result
	}

	if len(emails) == 0 {
		result.Success = true
		result.Errors = append(result.Errors, "No emails found in the provided mbox files")
		return result
	}

	result.EmailsProcessed = len(emails)
	report(10, fmt.Sprintf("Found %d emails, grouping...", len(emails)))

	groups, err := parser.GroupByDate(emails, strategy)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	report(20, fmt.Sprintf("Creating %d PDF files...", len(groups)))

	for i, group := range groups {
		report(20+i*75/len(groups), fmt.Sprintf("Generating %s.pdf...", group.Key))
		convertGroup(group, outputDir, result)
	}

	report(100, "Conversion complete")

	result.Success = result.PDFsCreated > 0
	return result
}

// convertGroup generates per-email PDFs in an isolated temp directory,
// stamps continuation headers, and merges the group into
// <outputDir>/<group-key>.pdf. The temp directory is removed before
// returning, including on failure.
func convertGroup(group parser.Group, outputDir string, result *Result) {
	tempDir, err := os.MkdirTemp("", "mbox-to-pdf-group-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to create temp directory for %s: %v", group.Key, err))
		return
	}
	defer os.RemoveAll(tempDir)

	var emailPDFs []string
	for j, email := range group.Emails {
		finalPDF, err := convertEmail(email, tempDir, j, result)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to process email %q: %v", email.Subject, err))
			continue
		}
		emailPDFs = append(emailPDFs, finalPDF)
	}

	if len(emailPDFs) == 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("No emails processed for group %s", group.Key))
		return
	}

	outPath := filepath.Join(outputDir, group.Key+".pdf")
	if err := pdf.Merge(emailPDFs, outPath); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to merge PDFs for %s: %v", group.Key, err))
		return
	}

	result.PDFsCreated++
	result.CreatedFiles = append(result.CreatedFiles, outPath)
}

// convertEmail renders one email, records its attachment diagnostics, and
// produces its stamped per-email PDF inside tempDir.
func convertEmail(email *parser.Email, tempDir string, index int, result *Result) (string, error) {
	emailHTML, attachments := render.Email(email)

	for _, ar := range attachments {
		recordAttachmentIssue(result, email, ar)
	}

	rawPDF := filepath.Join(tempDir, fmt.Sprintf("email_%04d_raw.pdf", index))
	imagesDir := filepath.Join(tempDir, fmt.Sprintf("email_%04d_images", index))
	if err := pdf.Generate(emailHTML, rawPDF, imagesDir); err != nil {
		return "", err
	}

	finalPDF := filepath.Join(tempDir, fmt.Sprintf("email_%04d.pdf", index))
	if err := pdf.AddContinuationHeaders(rawPDF, finalPDF, email.Subject); err != nil {
		return "", err
	}
	return finalPDF, nil
}
