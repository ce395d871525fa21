package normalize

import (
	"fmt"

	"github.com/leapstack-labs/roup/pkg/hostlang"
)

// ContinuationError reports a malformed line-continuation: an unbalanced
// backslash continuation, a continuation line missing its sentinel, or a
// trailing continuation marker with no following line.
type ContinuationError struct {
	Pos     hostlang.Position
	Message string
}

func (e *ContinuationError) Error() string {
	return fmt.Sprintf("continuation error at %s: %s", e.Pos, e.Message)
}

// SentinelError reports that the first token of the input is not a
// recognized pragma/sentinel for the configured host language and dialect.
type SentinelError struct {
	Pos     hostlang.Position
	Message string
}

func (e *SentinelError) Error() string {
	return fmt.Sprintf("sentinel error at %s: %s", e.Pos, e.Message)
}
