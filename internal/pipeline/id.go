package pipeline

import "github.com/google/uuid"

// newJobID returns a time-ordered UUIDv7 so job IDs sort by submission.
func newJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
