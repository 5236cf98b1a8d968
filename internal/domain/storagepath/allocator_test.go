package storagepath

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emostore/internal/domain/model"
)

func TestAllocateLayout(t *testing.T) {
	t.Parallel()

	allocator := NewAllocator()
	capturedAt := time.Date(2026, 3, 14, 9, 26, 53, 589*int(time.Millisecond), time.UTC)

	got, err := allocator.Allocate(capturedAt, "user42", model.AssessmentPHQ9, "sess-7", model.MediaImage, ".webp")
	require.NoError(t, err)

	parts := strings.Split(got, "/")
	require.Len(t, parts, 7)

	assert.Equal(t, []string{"2026", "03", "14", "user_user42", "phq9", "session_sess-7"}, parts[:6])
	assert.True(t, strings.HasPrefix(parts[6], "image_20260314T092653.589_"))
	assert.True(t, strings.HasSuffix(parts[6], ".webp"))
}

func TestAllocateNormalizesToUTC(t *testing.T) {
	t.Parallel()

	allocator := NewAllocator()
	tehran := time.FixedZone("IRST", int(3*time.Hour+30*time.Minute)/int(time.Second))
	capturedAt := time.Date(2026, 1, 1, 2, 0, 0, 0, tehran) // 2025-12-31 22:30 UTC

	got, err := allocator.Allocate(capturedAt, "u1", model.AssessmentOpenQuestions, "s1", model.MediaVideo, ".webm")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "2025/12/31/"))
}

func TestAllocateUniqueness(t *testing.T) {
	t.Parallel()

	allocator := NewAllocator()
	capturedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		got, err := allocator.Allocate(capturedAt, "u1", model.AssessmentPHQ9, "s1", model.MediaImage, ".jpg")
		require.NoError(t, err)

		_, dup := seen[got]
		require.False(t, dup, "duplicate path %s", got)
		seen[got] = struct{}{}
	}
}

func TestAllocateRejectsBadInput(t *testing.T) {
	t.Parallel()

	allocator := NewAllocator()
	now := time.Now()

	tests := []struct {
		name           string
		userID         string
		assessmentType string
		sessionID      string
		mediaType      string
		extension      string
	}{
		{"empty user", "", model.AssessmentPHQ9, "s1", model.MediaImage, ".jpg"},
		{"traversal user", "../../etc", model.AssessmentPHQ9, "s1", model.MediaImage, ".jpg"},
		{"slash in session", "u1", model.AssessmentPHQ9, "a/b", model.MediaImage, ".jpg"},
		{"backslash in session", "u1", model.AssessmentPHQ9, `a\b`, model.MediaImage, ".jpg"},
		{"dotted user", "u1.hidden", model.AssessmentPHQ9, "s1", model.MediaImage, ".jpg"},
		{"space in user", "u 1", model.AssessmentPHQ9, "s1", model.MediaImage, ".jpg"},
		{"unknown assessment", "u1", "interview", "s1", model.MediaImage, ".jpg"},
		{"unknown media type", "u1", model.AssessmentPHQ9, "s1", "audio", ".mp3"},
		{"extension without dot", "u1", model.AssessmentPHQ9, "s1", model.MediaImage, "jpg"},
		{"extension with slash", "u1", model.AssessmentPHQ9, "s1", model.MediaImage, "./x"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := allocator.Allocate(now, tc.userID, tc.assessmentType, tc.sessionID, tc.mediaType, tc.extension)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidCapture)
		})
	}
}

func TestValidateIdentifier(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateIdentifier("abc_DEF-123"))
	assert.Error(t, ValidateIdentifier(""))
	assert.Error(t, ValidateIdentifier(".."))
	assert.Error(t, ValidateIdentifier("a/b"))
	assert.Error(t, ValidateIdentifier("a b"))
}
