package utils

import "strings"

// mimeTypeToExtension maps the MIME types produced by browser capture
// (MediaRecorder segments / canvas snapshots) to their typical file extensions.
var mimeTypeToExtension = map[string]string{
	"image/bmp":        ".bmp",
	"image/gif":        ".gif",
	"image/jpeg":       ".jpg",
	"image/png":        ".png",
	"image/webp":       ".webp",
	"video/mp4":        ".mp4",
	"video/mpeg":       ".mpeg",
	"video/ogg":        ".ogv",
	"video/quicktime":  ".mov",
	"video/webm":       ".webm",
	"video/x-matroska": ".mkv",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove codec parameters if present (e.g., "video/webm;codecs=vp9")
	cleanedMimeType := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[cleanedMimeType]; ok {
		return ext
	}

	return ".bin"
}

// MatchesMediaType reports whether a detected MIME type belongs to the
// declared media type family ("image" or "video").
func MatchesMediaType(mimeType, mediaType string) bool {
	return strings.HasPrefix(strings.TrimSpace(mimeType), mediaType+"/")
}
