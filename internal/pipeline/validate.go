package pipeline

import (
	"fmt"

	"flyover/internal"
)

// ValidationError is a per-record failure: the record still gets rendered,
// but as a degraded page carrying this message.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s 必须为 '物理' 或 '历史'，当前为：%s", e.Field, e.Value)
}

// Validate enforces the closed track set. Unspecified passes: the blank is
// shown as a sentinel downstream rather than rejected here.
func Validate(sub internal.Submission) error {
	switch sub.Track.Kind {
	case internal.TrackPhysics, internal.TrackHistory, internal.TrackUnspecified:
		return nil
	default:
		return &ValidationError{Field: "track", Value: sub.Track.Raw}
	}
}
