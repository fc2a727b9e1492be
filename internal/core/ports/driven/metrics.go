package driven

// Extraction outcomes reported to a MetricsRecorder.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// MetricsRecorder counts extraction outcomes.
type MetricsRecorder interface {
	// RecordExtraction counts one extraction with the given outcome.
	RecordExtraction(outcome string)

	// RecordFetch counts one page download and its HTTP status (0 on transport error).
	RecordFetch(status int)

	// Flush writes the collected metrics to their destination.
	Flush() error
}
