// Package errclass centralizes attachment failure classification and the
// user-facing messages shown for each failure category.
package errclass

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the category of an attachment processing failure.
type Kind string

const (
	KindCorrupted          Kind = "corrupted"
	KindUnsupported        Kind = "unsupported"
	KindTooLarge           Kind = "too_large"
	KindEncodingError      Kind = "encoding_error"
	KindMissingLibrary     Kind = "missing_library"
	KindUnsupportedVariant Kind = "unsupported_variant"
	KindPasswordProtected  Kind = "password_protected"
	KindEmptyFile          Kind = "empty_file"
	KindUnknown            Kind = "unknown"
)

var messages = map[Kind]string{
	KindCorrupted:          "The file could not be read. It may be corrupted or incomplete.",
	KindUnsupported:        "This file type is not supported for rendering.",
	KindTooLarge:           "The file exceeds the maximum size limit (100MB).",
	KindEncodingError:      "The file encoding could not be determined.",
	KindMissingLibrary:     "A required library for processing this file type is not installed.",
	KindUnsupportedVariant: "This variant of the file format is not supported.",
	KindPasswordProtected:  "This file is password-protected and cannot be opened.",
	KindEmptyFile:          "The file is empty and contains no data.",
	KindUnknown:            "The file could not be processed due to an unexpected error.",
}

// Message returns the fixed user-facing sentence for a failure category.
func Message(kind Kind) string {
	if msg, ok := messages[kind]; ok {
		return msg
	}
	return messages[KindUnknown]
}

// Error is an attachment failure carrying its category.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with a failure category.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Classify maps an arbitrary failure to a Kind.
//
// Typed errors carry their category directly. Anything else is classified
// by keyword patterns in the error text, then by the explicit
// unsupported-type list, and finally as unknown. The keyword list and its
// priority order are fixed: user-facing categorization depends on them.
func Classify(err error, mimeType, filename string) Kind {
	var kinded *Error
	if errors.As(err, &kinded) {
		return kinded.Kind
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "password"), strings.Contains(msg, "encrypted"):
		return KindPasswordProtected
	case strings.Contains(msg, "corrupt"), strings.Contains(msg, "invalid"):
		return KindCorrupted
	case strings.Contains(msg, "not supported"), strings.Contains(msg, "unsupported"):
		return KindUnsupportedVariant
	case strings.Contains(msg, "empty"), strings.Contains(msg, "no data"):
		return KindEmptyFile
	}

	if IsUnsupportedFileType(mimeType, filename) {
		return KindUnsupported
	}
	return KindUnknown
}
