package parser

import "time"

// Email is one message extracted from an mbox archive, with the complete
// header set preserved for forensic documentation.
type Email struct {
	MessageID   string
	From        string
	To          string
	Subject     string
	Date        time.Time
	BodyText    string
	BodyHTML    string
	CC          string
	BCC         string
	InReplyTo   string
	References  []string
	XMailer     string
	Attachments []Attachment
	Headers     map[string]string
}

// Attachment is a raw attachment extracted from a message part.
// It is immutable after parsing; rendering results are produced
// separately by the render package.
type Attachment struct {
	Filename string
	MimeType string
	Size     int64
	Content  []byte
}

// Group is one date bucket of emails, identified by its group key
// (e.g. "2008-01-January", "2008-Q1", "2008").
type Group struct {
	Key    string
	Emails []*Email
}
