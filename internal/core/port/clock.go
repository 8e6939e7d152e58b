package port

import "time"

// Clock abstracts wall-clock time so evaluations can be replayed
// deterministically in tests.
type Clock interface {
	Now() time.Time
}
