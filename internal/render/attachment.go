package render

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
	"github.com/microcosm-cc/bluemonday"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/felo/mbox-to-pdf/internal/errclass"
	"github.com/felo/mbox-to-pdf/internal/parser"
)

// Rendering categories assigned to attachments.
const (
	KindHTML      = "html"
	KindText      = "text"
	KindTable     = "table"
	KindImage     = "image"
	KindDocx      = "docx"
	KindXlsx      = "xlsx"
	KindReference = "reference"
)

// Result is the outcome of rendering one attachment. Err is set when the
// renderer failed and the output degraded to a reference card.
type Result struct {
	Kind string
	HTML string
	Err  string
}

// attachmentPolicy is the sanitization allow-list for HTML attachments:
// structural, text, table, list, link and image tags only, with link and
// image attributes restricted to the harmless set.
var attachmentPolicy = buildAttachmentPolicy()

func buildAttachmentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"html", "body", "head", "title", "style",
		"p", "br", "div", "span",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "b", "em", "i", "u",
		"a", "img",
		"table", "thead", "tbody", "tr", "th", "td",
		"ol", "ul", "li",
	)
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowDataURIImages()
	return p
}

// renderRule pairs a match predicate with its renderer. Rules are evaluated
// in fixed priority order; the first match wins.
type renderRule struct {
	kind   string
	match  func(mimeType, filename string) bool
	render func(att *parser.Attachment) (string, error)
}

var renderRules = []renderRule{
	{KindTable, matchType("text/csv", ".csv"), renderCSV},
	{KindHTML, matchType("text/html", ".html", ".htm"), renderHTML},
	{KindDocx, matchType("application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"), renderDocx},
	{KindXlsx, matchType("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx"), renderXlsx},
	{KindText, matchPrefix("text/"), renderText},
	{KindImage, matchPrefix("image/"), renderImage},
}

func matchType(mimeType string, extensions ...string) func(string, string) bool {
	return func(mt, filename string) bool {
		if mt == mimeType {
			return true
		}
		for _, ext := range extensions {
			if strings.HasSuffix(filename, ext) {
				return true
			}
		}
		return false
	}
}

func matchPrefix(prefix string) func(string, string) bool {
	return func(mt, _ string) bool {
		return strings.HasPrefix(mt, prefix)
	}
}

// Attachment renders an attachment as an HTML fragment for PDF embedding.
//
// It never fails: a renderer error degrades the output to a reference card
// with the error recorded on the Result.
func Attachment(att *parser.Attachment) Result {
	mimeType := strings.ToLower(att.MimeType)
	filename := strings.ToLower(att.Filename)

	for _, rule := range renderRules {
		if !rule.match(mimeType, filename) {
			continue
		}
		htmlContent, err := rule.render(att)
		if err != nil {
			return Result{
				Kind: KindReference,
				HTML: renderReference(att),
				Err:  err.Error(),
			}
		}
		return Result{Kind: rule.kind, HTML: htmlContent}
	}

	return Result{Kind: KindReference, HTML: renderReference(att)}
}

// renderCSV renders a CSV attachment as an HTML table with the first row
// as the header. An empty row list degrades to a reference card.
func renderCSV(att *parser.Attachment) (string, error) {
	content := decodeText(att.Content)

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return "", errclass.New(errclass.KindCorrupted, err)
	}
	if len(rows) == 0 {
		return renderReference(att), nil
	}

	var b strings.Builder
	b.WriteString(`<table class="attachment-csv">`)
	b.WriteString("<thead><tr>")
	for _, cell := range rows[0] {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(cell))
	}
	b.WriteString("</tr></thead>")

	if len(rows) > 1 {
		b.WriteString("<tbody>")
		for _, row := range rows[1:] {
			b.WriteString("<tr>")
			for _, cell := range row {
				fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell))
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody>")
	}

	b.WriteString("</table>")
	return b.String(), nil
}

// renderHTML sanitizes an HTML attachment and wraps it in a container div.
func renderHTML(att *parser.Attachment) (string, error) {
	content := decodeText(att.Content)
	sanitized := attachmentPolicy.Sanitize(content)
	return fmt.Sprintf(`<div class="attachment-html">%s</div>`, sanitized), nil
}

// renderDocx extracts paragraph text from a Word document and renders it
// with paragraph breaks preserved. Empty extraction degrades to reference.
func renderDocx(att *parser.Attachment) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(att.Content))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return renderReference(att), nil
	}
	return fmt.Sprintf(`<div class="attachment-docx">%s</div>`,
		formatParagraphs(html.EscapeString(text))), nil
}

// renderXlsx renders every sheet of a spreadsheet as a heading followed by
// a table of its cell values. A workbook with no sheets degrades to
// reference.
func renderXlsx(att *parser.Attachment) (string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(att.Content))
	if err != nil {
		return "", err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return renderReference(att), nil
	}

	var b strings.Builder
	b.WriteString(`<div class="attachment-xlsx">`)
	for _, sheet := range sheets {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, `<h4 style="margin-top: 1em; margin-bottom: 0.5em;">%s</h4>`,
			html.EscapeString(sheet))
		b.WriteString("<table>")
		for _, row := range rows {
			b.WriteString("<tr>")
			for _, cell := range row {
				fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell))
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</table>")
	}
	b.WriteString("</div>")
	return b.String(), nil
}

// renderText renders a plain text attachment as escaped paragraphs.
func renderText(att *parser.Attachment) (string, error) {
	content := decodeText(att.Content)
	return fmt.Sprintf(`<div class="attachment-text">%s</div>`,
		formatParagraphs(html.EscapeString(content))), nil
}

// renderImage embeds an image attachment as a base64 data URI.
func renderImage(att *parser.Attachment) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(att.Content)
	return fmt.Sprintf(`<img src="data:%s;base64,%s" alt="%s" class="attachment-image" />`,
		att.MimeType, encoded, html.EscapeString(att.Filename)), nil
}

// renderReference renders the fallback card for an attachment that cannot
// be displayed, showing only its metadata.
func renderReference(att *parser.Attachment) string {
	return fmt.Sprintf(`<div class="attachment-reference">`+
		`<strong>Attachment:</strong> %s<br/>`+
		`<small>Type: %s | Size: %s</small><br/>`+
		`<em>This attachment type cannot be rendered in the PDF.</em>`+
		`</div>`,
		html.EscapeString(att.Filename),
		html.EscapeString(att.MimeType),
		errclass.FormatFileSize(att.Size))
}

// formatParagraphs splits already-escaped text into paragraphs on blank
// lines, preserving internal line breaks.
func formatParagraphs(escaped string) string {
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	var b strings.Builder
	for _, para := range strings.Split(escaped, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(para, "\n", "<br/>"))
		b.WriteString("</p>")
	}
	return b.String()
}

// decodeText converts raw attachment bytes to a string, trying UTF-8 first
// and falling back to Latin-1 with lossy replacement. It never fails.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(decoded)
}
