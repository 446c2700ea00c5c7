package install

import "fmt"

// UnsupportedFormatError reports an archive whose suffix matches none of the
// known extraction tools.
type UnsupportedFormatError struct {
	Archive string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported archive format: %s", e.Archive)
}

// ExtractionError reports an external extraction tool that exited with a
// failure.
type ExtractionError struct {
	Tool    string
	Archive string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: tool=%s archive=%s: %v", e.Tool, e.Archive, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
