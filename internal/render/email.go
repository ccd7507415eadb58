package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/felo/mbox-to-pdf/internal/errclass"
	"github.com/felo/mbox-to-pdf/internal/parser"
)

// AttachmentRender pairs an attachment with its rendering result so the
// caller can record diagnostics without rendering twice.
type AttachmentRender struct {
	Attachment *parser.Attachment
	Result     Result
}

// headerDateLayout formats dates in the rendered header block.
const headerDateLayout = "Monday, January 02, 2006 at 03:04 PM"

// Email renders one email as a self-contained HTML fragment: a header
// block with the full forensic field set, the body, and every attachment
// rendered inline.
func Email(e *parser.Email) (string, []AttachmentRender) {
	var b strings.Builder
	b.WriteString(`<div class="email-message">`)

	renderHeaderBlock(&b, e)
	renderBodyBlock(&b, e)

	var attachments []AttachmentRender
	if len(e.Attachments) > 0 {
		attachments = renderAttachmentsBlock(&b, e)
	}

	b.WriteString("</div>")
	return b.String(), attachments
}

func renderHeaderBlock(b *strings.Builder, e *parser.Email) {
	b.WriteString(`<div class="email-header">`)

	headerField(b, "Date", e.Date.Format(headerDateLayout))
	headerField(b, "From", html.EscapeString(e.From))
	headerField(b, "To", html.EscapeString(e.To))
	if e.CC != "" {
		headerField(b, "CC", html.EscapeString(e.CC))
	}
	if e.BCC != "" {
		headerField(b, "BCC", html.EscapeString(e.BCC))
	}
	headerField(b, "Subject", html.EscapeString(e.Subject))
	headerField(b, "Message-ID", html.EscapeString(e.MessageID))
	if e.InReplyTo != "" {
		headerField(b, "In-Reply-To", html.EscapeString(e.InReplyTo))
	}
	if len(e.References) > 0 {
		headerField(b, "References", html.EscapeString(strings.Join(e.References, " ")))
	}
	if e.XMailer != "" {
		headerField(b, "X-Mailer", html.EscapeString(e.XMailer))
	}

	b.WriteString("</div>")
}

func headerField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<div class="header-field">`+
		`<span class="header-label">%s:</span> `+
		`<span class="header-value">%s</span>`+
		`</div>`, label, value)
}

// renderBodyBlock writes the body: the HTML body as-is when present
// (sanitization of attachment HTML happens in the attachment renderer;
// the message's own HTML body is embedded for fidelity), otherwise the
// escaped plain text split into paragraphs.
func renderBodyBlock(b *strings.Builder, e *parser.Email) {
	b.WriteString(`<div class="email-body">`)
	if e.BodyHTML != "" {
		fmt.Fprintf(b, `<div class="html-body">%s</div>`, e.BodyHTML)
	} else if e.BodyText != "" {
		fmt.Fprintf(b, `<div class="plaintext-body">%s</div>`,
			formatParagraphs(html.EscapeString(e.BodyText)))
	}
	b.WriteString("</div>")
}

func renderAttachmentsBlock(b *strings.Builder, e *parser.Email) []AttachmentRender {
	b.WriteString(`<div class="attachments-section">`)
	b.WriteString(`<h3 class="attachments-header">Attachments</h3>`)

	results := make([]AttachmentRender, 0, len(e.Attachments))
	for i := range e.Attachments {
		att := &e.Attachments[i]
		b.WriteString(`<div class="attachment-item">`)
		fmt.Fprintf(b, `<div class="attachment-name">%s <small>(%s)</small></div>`,
			html.EscapeString(att.Filename), errclass.FormatFileSize(att.Size))

		result := Attachment(att)
		fmt.Fprintf(b, `<div class="attachment-content">%s</div>`, result.HTML)
		b.WriteString("</div>")

		results = append(results, AttachmentRender{Attachment: att, Result: result})
	}

	b.WriteString("</div>")
	return results
}
