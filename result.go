package netkit

import "slices"

// Result is the typed outcome of a single facade call. It is constructed
// fresh per call and owned by its caller. StatusCode 0 means the request
// was never attempted (local validation failure or transport error before
// a response). Protocol failures keep HasError false, so callers must check
// both HasError and IsSuccess.
type Result[S Sink] struct {
	StatusCode    int
	Content       S
	HasError      bool
	ErrorMessage  string
	DetailedError string

	// RawHeaders holds the newline-delimited "Key: Value" response header
	// block captured for HEAD requests.
	RawHeaders string

	// SuccessCodes is the status set this result is classified against.
	// Orchestrators stamp it from their config; empty falls back to the
	// plain-execute default.
	SuccessCodes []int
}

// SetError marks the result failed with a short message and a detailed one.
func (r *Result[S]) SetError(msg, detail string) {
	r.HasError = true
	r.ErrorMessage = msg
	r.DetailedError = detail
}

// IsSuccess reports whether the status code is in the success set and no
// error was recorded.
func (r *Result[S]) IsSuccess() bool {
	if r.HasError {
		return false
	}
	codes := r.SuccessCodes
	if len(codes) == 0 {
		codes = defaultSuccessCodes
	}
	return slices.Contains(codes, r.StatusCode)
}

// HasContent reports whether any bytes reached the sink.
func (r *Result[S]) HasContent() bool {
	return r.Content.Len() > 0
}
