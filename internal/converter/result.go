package converter

import (
	"github.com/felo/mbox-to-pdf/internal/errclass"
	"github.com/felo/mbox-to-pdf/internal/parser"
	"github.com/felo/mbox-to-pdf/internal/render"
)

// Result is the outcome of one conversion run.
//
// Errors holds log-level messages for failures that excluded an email or a
// group from the output. AttachmentErrors is an informational side channel:
// attachments that could not be rendered meaningfully never abort
// processing, but each one is recorded here for display.
type Result struct {
	Success          bool
	PDFsCreated      int
	EmailsProcessed  int
	Errors           []string
	AttachmentErrors []AttachmentErrorInfo
	CreatedFiles     []string
}

// AttachmentErrorInfo is a display-ready snapshot of one attachment issue.
type AttachmentErrorInfo struct {
	EmailSubject string
	EmailDate    string
	EmailFrom    string
	Filename     string
	MimeType     string
	FileSize     string
	ErrorType    string
	ErrorMessage string
}

// issueDateLayout formats email dates in attachment issue records.
const issueDateLayout = "Mon, January 02, 2006 at 03:04 PM"

// recordAttachmentIssue appends a diagnostic record for an attachment that
// failed to render (rendering_failed) or could only be shown as a
// reference card (unsupported_type). Cleanly rendered attachments produce
// no record.
func recordAttachmentIssue(result *Result, email *parser.Email, ar render.AttachmentRender) {
	info := AttachmentErrorInfo{
		EmailSubject: email.Subject,
		EmailDate:    email.Date.Format(issueDateLayout),
		EmailFrom:    email.From,
		Filename:     ar.Attachment.Filename,
		MimeType:     ar.Attachment.MimeType,
		FileSize:     errclass.FormatFileSize(ar.Attachment.Size),
	}

	switch {
	case ar.Result.Err != "":
		info.ErrorType = "rendering_failed"
		info.ErrorMessage = "Could not render attachment: " + ar.Result.Err
	case ar.Result.Kind == render.KindReference:
		info.ErrorType = "unsupported_type"
		info.ErrorMessage = "This file type cannot be rendered in the PDF."
	default:
		return
	}

	result.AttachmentErrors = append(result.AttachmentErrors, info)
}
