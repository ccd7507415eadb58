package pdf

import (
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// maxHeaderSubjectLen is where the continuation header truncates subjects.
const maxHeaderSubjectLen = 60

// continuationStampDesc places the header top-left in small gray type,
// inside the page's top margin.
const continuationStampDesc = "fontname:Helvetica, points:8, scalefactor:1 abs, pos:tl, offset:10 -20, fillcolor:#666666, rotation:0, opacity:1"

// AddContinuationHeaders re-emits a single-email PDF with a running header
// on every page except the first:
//
//	Subject: <subject> (continued - page N of TOTAL)
//
// Single-page input passes through page-equivalent; the page count is
// invariant across this transform.
func AddContinuationHeaders(inPath, outPath, subject string) error {
	pageCount, err := api.PageCountFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read page count: %w", err)
	}

	if pageCount <= 1 {
		if err := api.TrimFile(inPath, outPath, []string{"1-"}, nil); err != nil {
			return fmt.Errorf("failed to copy single-page PDF: %w", err)
		}
		return nil
	}

	text := fmt.Sprintf("Subject: %s (continued - page %%p of %%P)", headerSubject(subject))
	wm, err := api.TextWatermark(text, continuationStampDesc, true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to build continuation header: %w", err)
	}

	if err := api.AddWatermarksFile(inPath, outPath, []string{"2-"}, wm, nil); err != nil {
		return fmt.Errorf("failed to stamp continuation headers: %w", err)
	}
	return nil
}

// headerSubject truncates long subjects and neutralizes the stamp
// engine's page-number placeholders.
func headerSubject(subject string) string {
	if len(subject) > maxHeaderSubjectLen {
		subject = subject[:maxHeaderSubjectLen] + "..."
	}
	return strings.ReplaceAll(subject, "%", "")
}
