package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMinimalPDF writes a structurally valid PDF with the given number of
// empty letter-size pages, for exercising the page-level tooling without a
// rendering backend.
func writeMinimalPDF(t *testing.T, path string, pages int) {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, pages)
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))

	for i := 0; i < pages; i++ {
		writeObj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefPos)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

// TestAddContinuationHeaders_SinglePagePassthrough tests that single-page
// input keeps its page count and gains no overlay
func TestAddContinuationHeaders_SinglePagePassthrough(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	writeMinimalPDF(t, in, 1)

	require.NoError(t, AddContinuationHeaders(in, out, "Some subject"))

	count, err := PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "continued", "Single-page output must carry no overlay")
}

// TestAddContinuationHeaders_MultiPage tests that the page count is
// invariant and pages 2+ gain the running header
func TestAddContinuationHeaders_MultiPage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	writeMinimalPDF(t, in, 3)

	require.NoError(t, AddContinuationHeaders(in, out, "Quarterly report"))

	count, err := PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "Page count must be invariant across the stamp")
}

// TestHeaderSubject tests subject truncation for the running header
func TestHeaderSubject(t *testing.T) {
	long := strings.Repeat("x", 80)

	assert.Equal(t, strings.Repeat("x", 60)+"...", headerSubject(long))
	assert.Equal(t, "short", headerSubject("short"))
	assert.NotContains(t, headerSubject("50% off"), "%")
}

// TestMerge tests that merged output carries the pages of all inputs in order
func TestMerge(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	out := filepath.Join(dir, "merged.pdf")
	writeMinimalPDF(t, a, 2)
	writeMinimalPDF(t, b, 3)

	require.NoError(t, Merge([]string{a, b}, out))

	count, err := PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

// TestMerge_NoInputs tests the empty-input error
func TestMerge_NoInputs(t *testing.T) {
	err := Merge(nil, filepath.Join(t.TempDir(), "out.pdf"))
	require.Error(t, err)
}

// TestRewriteDataURIs tests extraction of embedded images to temp files
func TestRewriteDataURIs(t *testing.T) {
	dir := t.TempDir()
	payload := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4E, 0x47})
	html := fmt.Sprintf(`<img src="data:image/png;base64,%s" alt="x" />`, payload)

	rewritten, err := rewriteDataURIs(html, dir)
	require.NoError(t, err)

	assert.NotContains(t, rewritten, "data:image/png")
	assert.Contains(t, rewritten, "file://")
	assert.Contains(t, rewritten, "image_1.png")

	written, err := os.ReadFile(filepath.Join(dir, "image_1.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, written)
}

// TestRewriteDataURIs_JpegExtension tests extension inference from the subtype
func TestRewriteDataURIs_JpegExtension(t *testing.T) {
	dir := t.TempDir()
	payload := base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8})
	html := fmt.Sprintf(`<img src="data:image/jpeg;base64,%s" />`, payload)

	rewritten, err := rewriteDataURIs(html, dir)
	require.NoError(t, err)
	assert.Contains(t, rewritten, "image_1.jpg")
}

// TestRewriteDataURIs_NoURIs tests that HTML without data URIs passes
// through untouched and creates no directory
func TestRewriteDataURIs_NoURIs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")
	html := "<p>plain content</p>"

	rewritten, err := rewriteDataURIs(html, dir)
	require.NoError(t, err)
	assert.Equal(t, html, rewritten)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

// TestGenerate tests HTML-to-PDF rendering end to end; it needs the
// wkhtmltopdf binary and is skipped when it is not installed
func TestGenerate(t *testing.T) {
	if !Available() {
		t.Skip("wkhtmltopdf not installed")
	}

	dir := t.TempDir()
	out := filepath.Join(dir, "out.pdf")
	images := filepath.Join(dir, "images")

	err := Generate(`<div class="email-message"><p>Hello PDF</p></div>`, out, images)
	require.NoError(t, err)

	count, err := PageCount(out)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1)
}
