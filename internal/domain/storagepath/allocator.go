package storagepath

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"emostore/internal/domain/model"
)

// identifierPattern is the only shape accepted for user, session and
// question identifiers embedded in storage paths. Anything else (path
// separators, dots, traversal sequences) is rejected outright.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Allocator maps a capture to its canonical relative storage path:
//
//	YYYY/MM/DD/user_<userId>/<assessmentType>/session_<sessionId>/<mediaType>_<stamp>_<token><ext>
//
// The date partition lets retention prune whole days cheaply, the user and
// session partitions make per-user and per-session listing a directory
// lookup, and no two users ever share a directory. The uuid token keeps
// paths unique even when two captures land in the same millisecond, so an
// allocated path is never reused, not even after deletion.
type Allocator struct{}

func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocate returns the relative path for a capture with the given file
// extension (including the leading dot). It performs no I/O.
func (a *Allocator) Allocate(capturedAt time.Time, userID, assessmentType, sessionID,
	mediaType, extension string,
) (string, error) {
	if err := ValidateIdentifier(userID); err != nil {
		return "", fmt.Errorf("%w: user id: %s", model.ErrInvalidCapture, err.Error())
	}
	if err := ValidateIdentifier(sessionID); err != nil {
		return "", fmt.Errorf("%w: session id: %s", model.ErrInvalidCapture, err.Error())
	}
	if !model.ValidAssessmentType(assessmentType) {
		return "", fmt.Errorf("%w: unknown assessment type %q", model.ErrInvalidCapture, assessmentType)
	}
	if !model.ValidMediaType(mediaType) {
		return "", fmt.Errorf("%w: unknown media type %q", model.ErrInvalidCapture, mediaType)
	}
	if extension != "" && (!strings.HasPrefix(extension, ".") || strings.ContainsAny(extension[1:], "./\\")) {
		return "", fmt.Errorf("%w: bad extension %q", model.ErrInvalidCapture, extension)
	}

	utc := capturedAt.UTC()
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	name := fmt.Sprintf("%s_%s_%s%s", mediaType, utc.Format("20060102T150405.000"), token, extension)

	return path.Join(
		utc.Format("2006/01/02"),
		"user_"+userID,
		assessmentType,
		"session_"+sessionID,
		name,
	), nil
}

// ValidateIdentifier rejects identifiers that cannot safely appear as a
// single path element.
func ValidateIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("empty identifier")
	}
	if !identifierPattern.MatchString(id) {
		return fmt.Errorf("identifier %q contains reserved characters", id)
	}

	return nil
}
