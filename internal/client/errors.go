package client

import "fmt"

// TransportError reports a catalog request that could not be sent, read, or
// that came back outside the 200 class.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: url=%s status=%d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("transport error: url=%s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid JSON or does not
// match the expected catalog envelope.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: url=%s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
