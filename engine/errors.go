package engine

import "errors"

var (
	// ErrMalformedTiming marks speech spans that overlap, run backwards, or
	// add up to more speech than the response contains.
	ErrMalformedTiming = errors.New("malformed timing")

	// ErrInvalidLatency marks a negative or non-finite response latency.
	ErrInvalidLatency = errors.New("invalid response latency")
)
