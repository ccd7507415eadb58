package parser

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/emersion/go-mbox"
	"github.com/emersion/go-message"
	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"golang.org/x/text/encoding/charmap"
)

func init() {
	// Register additional charsets that are commonly used in emails
	charset.RegisterEncoding("windows-1252", charmap.Windows1252)
	charset.RegisterEncoding("iso-8859-1", charmap.ISO8859_1)
	charset.RegisterEncoding("iso-8859-15", charmap.ISO8859_15)
}

// ParseMboxFile parses an mbox archive and returns its messages sorted by
// date ascending.
//
// Messages without a parseable Date header are skipped, as are messages
// whose MIME structure cannot be opened at all: the contract for a single
// archive is best-effort extraction, not validation.
func ParseMboxFile(path string) ([]*Email, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mbox file not found: %w", err)
	}
	defer f.Close()

	mr := mbox.NewReader(f)

	var emails []*Email
	for {
		msg, err := mr.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read mbox message: %w", err)
		}

		email := parseMessage(msg)
		if email != nil {
			emails = append(emails, email)
		}
	}

	sortByDate(emails)
	return emails, nil
}

// parseMessage parses a single message into an Email.
// Returns nil if the message is malformed or its date cannot be parsed.
func parseMessage(r io.Reader) *Email {
	mr, err := mail.CreateReader(r)
	if err != nil && !message.IsUnknownCharset(err) {
		return nil
	}

	header := mr.Header

	// A message without a parseable date has no place in a date-grouped
	// archive, so it is dropped rather than guessed at.
	date, err := header.Date()
	if err != nil {
		return nil
	}

	email := &Email{
		MessageID: header.Get("Message-Id"),
		From:      headerText(&header, "From"),
		To:        headerText(&header, "To"),
		Subject:   headerText(&header, "Subject"),
		Date:      date,
		CC:        headerText(&header, "Cc"),
		BCC:       headerText(&header, "Bcc"),
		InReplyTo: strings.TrimSpace(header.Get("In-Reply-To")),
		XMailer:   header.Get("X-Mailer"),
		Headers:   headerMap(&header),
	}

	if refs := header.Get("References"); refs != "" {
		email.References = strings.Fields(refs)
	}

	extractBodyAndAttachments(mr, email)
	return email
}

// extractBodyAndAttachments walks all leaf parts of the message.
//
// The first text/plain leaf becomes the text body and the first text/html
// leaf becomes the HTML body; additional leaves of the same type are
// ignored. This first-wins rule can drop content in unusual multipart
// layouts, but it keeps the output deterministic.
func extractBodyAndAttachments(mr *mail.Reader, email *Email) {
	sawText := false
	sawHTML := false

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep whatever was extracted so far.
			break
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, params, _ := h.ContentType()

			// Inline parts that carry a filename are attachments in
			// disguise (some clients omit the attachment disposition).
			if name := params["name"]; name != "" {
				email.appendAttachment(name, contentType, part.Body)
				continue
			}

			body := readDecoded(part.Body)
			switch {
			case strings.HasPrefix(contentType, "text/plain") && !sawText:
				email.BodyText = body
				sawText = true
			case strings.HasPrefix(contentType, "text/html") && !sawHTML:
				email.BodyHTML = body
				sawHTML = true
			}

		case *mail.AttachmentHeader:
			filename, _ := h.Filename()
			contentType, _, _ := h.ContentType()
			email.appendAttachment(filename, contentType, part.Body)
		}
	}
}

// appendAttachment reads a part body and records it as an attachment.
// Parts with no decodable payload are dropped.
func (e *Email) appendAttachment(filename, contentType string, body io.Reader) {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return
	}
	if filename == "" {
		filename = "unnamed_attachment"
	}
	e.Attachments = append(e.Attachments, Attachment{
		Filename: filename,
		MimeType: contentType,
		Size:     int64(len(data)),
		Content:  data,
	})
}

// readDecoded reads a part body as text. The part's declared charset is
// handled by go-message; raw bytes that are not valid UTF-8 fall back to a
// lossless Latin-1 mapping so decoding never fails.
func readDecoded(r io.Reader) string {
	data, err := io.ReadAll(r)
	if err != nil {
		// Partial reads still carry usable content.
		if len(data) == 0 {
			return ""
		}
	}
	return decodeFallback(data)
}

// decodeFallback converts raw bytes to a string, trying UTF-8 first and
// falling back to Latin-1 with lossy replacement. It never fails.
func decodeFallback(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(decoded)
}

// headerText returns the decoded text of a header field, falling back to
// the raw value when the charset is unknown.
func headerText(h *mail.Header, key string) string {
	text, err := h.Text(key)
	if err != nil {
		return h.Get(key)
	}
	return text
}

// headerMap captures every header field verbatim for forensic completeness,
// independent of which headers were parsed into typed fields. The first
// value wins for repeated keys.
func headerMap(h *mail.Header) map[string]string {
	m := make(map[string]string)
	fields := h.Fields()
	for fields.Next() {
		key := fields.Key()
		if _, ok := m[key]; ok {
			continue
		}
		text, err := fields.Text()
		if err != nil {
			text = fields.Value()
		}
		m[key] = text
	}
	return m
}

func sortByDate(emails []*Email) {
	sort.SliceStable(emails, func(i, j int) bool {
		return emails[i].Date.Before(emails[j].Date)
	})
}
