package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExtensionFromMimeType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mimeType string
		expected string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"video/webm", ".webm"},
		{"video/webm;codecs=vp9", ".webm"},
		{"video/mp4; codecs=avc1", ".mp4"},
		{"application/octet-stream", ".bin"},
		{"", ".bin"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, GetExtensionFromMimeType(tc.mimeType), tc.mimeType)
	}
}

func TestMatchesMediaType(t *testing.T) {
	t.Parallel()

	assert.True(t, MatchesMediaType("image/png", "image"))
	assert.True(t, MatchesMediaType("video/webm", "video"))
	assert.False(t, MatchesMediaType("image/png", "video"))
	assert.False(t, MatchesMediaType("text/plain", "image"))
	assert.False(t, MatchesMediaType("imagepng", "image"))
}
