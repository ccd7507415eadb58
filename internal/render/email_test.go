package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felo/mbox-to-pdf/internal/parser"
)

func testEmail() *parser.Email {
	return &parser.Email{
		MessageID: "<kickoff-1@example.com>",
		From:      "Alice Example <alice@example.com>",
		To:        "bob@example.com",
		Subject:   "Project <kickoff>",
		Date:      time.Date(2008, time.January, 4, 14, 30, 0, 0, time.UTC),
		BodyText:  "First paragraph\nstill first\n\nSecond paragraph",
	}
}

// TestEmail_HeaderBlock tests the forensic header block
func TestEmail_HeaderBlock(t *testing.T) {
	html, _ := Email(testEmail())

	assert.Contains(t, html, "Friday, January 04, 2008 at 02:30 PM")
	assert.Contains(t, html, "Alice Example &lt;alice@example.com&gt;")
	assert.Contains(t, html, "bob@example.com")
	assert.Contains(t, html, "Project &lt;kickoff&gt;")
	assert.Contains(t, html, "&lt;kickoff-1@example.com&gt;")

	// Optional headers are omitted when absent
	assert.NotContains(t, html, "In-Reply-To")
	assert.NotContains(t, html, "X-Mailer")
	assert.NotContains(t, html, ">CC:<")
}

// TestEmail_OptionalHeaders tests that threading and client fields appear
// when present
func TestEmail_OptionalHeaders(t *testing.T) {
	email := testEmail()
	email.CC = "carol@example.com"
	email.InReplyTo = "<parent@example.com>"
	email.References = []string{"<root@example.com>", "<parent@example.com>"}
	email.XMailer = "TestMailer 1.0"

	html, _ := Email(email)

	assert.Contains(t, html, "carol@example.com")
	assert.Contains(t, html, "In-Reply-To")
	assert.Contains(t, html, "&lt;root@example.com&gt; &lt;parent@example.com&gt;")
	assert.Contains(t, html, "TestMailer 1.0")
}

// TestEmail_PlainTextBody tests paragraph formatting of the text body
func TestEmail_PlainTextBody(t *testing.T) {
	html, _ := Email(testEmail())

	assert.Contains(t, html, `<div class="plaintext-body">`)
	assert.Contains(t, html, "<p>First paragraph<br/>still first</p>")
	assert.Contains(t, html, "<p>Second paragraph</p>")
}

// TestEmail_HTMLBodyPreferred tests that the HTML body is embedded as-is
// when present
func TestEmail_HTMLBodyPreferred(t *testing.T) {
	email := testEmail()
	email.BodyHTML = "<p>The <strong>HTML</strong> version</p>"

	html, _ := Email(email)

	assert.Contains(t, html, `<div class="html-body"><p>The <strong>HTML</strong> version</p></div>`)
	assert.NotContains(t, html, "plaintext-body")
}

// TestEmail_AttachmentsBlock tests the attachments section and the
// returned per-attachment results
func TestEmail_AttachmentsBlock(t *testing.T) {
	email := testEmail()
	email.Attachments = []parser.Attachment{
		{Filename: "notes.txt", MimeType: "text/plain", Size: 11, Content: []byte("hello notes")},
		{Filename: "song.mp3", MimeType: "audio/mpeg", Size: 4, Content: []byte{1, 2, 3, 4}},
	}

	html, results := Email(email)

	assert.Contains(t, html, "Attachments")
	assert.Contains(t, html, "notes.txt")
	assert.Contains(t, html, "(11 B)")
	assert.Contains(t, html, "hello notes")

	require.Len(t, results, 2)
	assert.Equal(t, KindText, results[0].Result.Kind)
	assert.Equal(t, KindReference, results[1].Result.Kind)
	assert.Same(t, &email.Attachments[1], results[1].Attachment)
}

// TestEmail_NoAttachmentsNoSection tests that the attachments block is
// omitted entirely for attachment-free emails
func TestEmail_NoAttachmentsNoSection(t *testing.T) {
	html, results := Email(testEmail())

	assert.NotContains(t, html, "attachments-section")
	assert.Empty(t, results)
}
