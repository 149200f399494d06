package telegram

import (
	"path/filepath"
	"strings"
)

// mimeTypes maps file extensions to MIME types for the formats that matter
// in bot uploads. Deliberately small and static; not a general MIME database.
var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".mp3":  "audio/mpeg",
	".ogg":  "audio/ogg",
	".wav":  "audio/wav",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".json": "application/json",
	".xml":  "application/xml",
}

// DetectMIMEType infers a MIME type from the extension of filename,
// case-insensitively and using only the part after the last dot. Unknown or
// missing extensions report ok=false; callers decide the default
// (the multipart encoder uses application/octet-stream).
func DetectMIMEType(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	mimeType, ok := mimeTypes[ext]
	return mimeType, ok
}
