package errclass

import "strings"

// File types that are explicitly not renderable inside a PDF.
var (
	unsupportedMimePrefixes = []string{
		"audio/",
		"video/",
	}

	unsupportedMimeTypes = map[string]bool{
		"application/x-zip-compressed":  true,
		"application/zip":               true,
		"application/x-rar-compressed":  true,
		"application/x-7z-compressed":   true,
		"application/x-tar":             true,
		"application/gzip":              true,
		"application/x-executable":      true,
		"application/x-msdownload":      true, // .exe, .dll
		"application/x-shockwave-flash": true,
		"application/java-archive":      true,
	}

	unsupportedExtensions = []string{
		".exe", ".dll", ".so", ".dylib", // executables
		".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", // archives
		".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", // audio
		".mp4", ".avi", ".mov", ".mkv", ".wmv", ".flv", // video
		".swf", ".jar", // other binary
	}
)

// IsUnsupportedFileType reports whether a file type is explicitly blocked
// from rendering. The extension check fires even when the MIME type is a
// generic application/octet-stream.
func IsUnsupportedFileType(mimeType, filename string) bool {
	mimeType = strings.ToLower(mimeType)

	for _, prefix := range unsupportedMimePrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	if unsupportedMimeTypes[mimeType] {
		return true
	}

	filename = strings.ToLower(filename)
	for _, ext := range unsupportedExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

// MaxAttachmentSize is the advisory attachment size ceiling (100 MB).
const MaxAttachmentSize = 100 * 1024 * 1024

// CheckAttachmentSize reports whether an attachment is within the advisory
// size limit. It is not enforced by the conversion pipeline itself; callers
// may use it to pre-filter oversized attachments.
func CheckAttachmentSize(sizeBytes int64) bool {
	return sizeBytes <= MaxAttachmentSize
}
