package znuny

import "fmt"

// ValidationError is returned when a required field is empty after trimming.
// It is raised before anything touches the network.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// TransportError covers everything that kept a request from completing
// normally: connection failures as well as HTTP error statuses. Body holds
// the raw response body, if there was one, for diagnostics.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PlatformError means the HTTP request itself succeeded but the platform
// reported an error of its own in the response body.
type PlatformError struct {
	Message string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform error: %s", e.Message)
}

// FileReadError is returned when an attachment's source file can not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading attachment file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
