package markus

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// extensionTypes covers common grading artifacts so resolution does not
// depend on the host's mime.types files.
var extensionTypes = map[string]string{
	".c":    "text/x-c",
	".csv":  "text/csv",
	".gif":  "image/gif",
	".h":    "text/x-c",
	".htm":  "text/html",
	".html": "text/html",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".js":   "application/javascript",
	".json": "application/json",
	".md":   "text/markdown",
	".pdf":  "application/pdf",
	".png":  "image/png",
	".py":   "text/x-python",
	".sh":   "application/x-sh",
	".svg":  "image/svg+xml",
	".tar":  "application/x-tar",
	".txt":  "text/plain",
	".xml":  "text/xml",
	".zip":  "application/zip",
}

// ResolveMimeType returns explicit when set, otherwise the mime type implied
// by filename's extension. It fails with ErrUnresolvedMimeType when neither
// gives an answer.
func ResolveMimeType(filename, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" {
		if t, ok := extensionTypes[ext]; ok {
			return t, nil
		}
		if t := mime.TypeByExtension(ext); t != "" {
			if mediaType, _, err := mime.ParseMediaType(t); err == nil {
				return mediaType, nil
			}
			return t, nil
		}
	}

	return "", &Error{
		Op:  "upload",
		Err: ErrUnresolvedMimeType,
		Msg: fmt.Sprintf("%q needs a known file extension or an explicit mime type", filename),
	}
}
