package textproc

import "fmt"

// InitializationError represents a failure to build the linguistic pipeline
// at process start. It is fatal: without a working annotator the engine must
// not serve analyses.
type InitializationError struct {
	Component string
	Cause     error
}

func (e *InitializationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("text processing initialization failed: %s: %v", e.Component, e.Cause)
	}
	return fmt.Sprintf("text processing initialization failed: %s", e.Component)
}

func (e *InitializationError) Unwrap() error {
	return e.Cause
}

// ProcessingError represents a per-call failure to annotate input text.
// Callers may surface it and retry with different input; it never indicates
// a broken pipeline.
type ProcessingError struct {
	Message string
	Cause   error
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("text processing error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("text processing error: %s", e.Message)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}
