package synth

import "errors"

// Errors returned by the synthesizer.
var (
	ErrUnknownMethod   = errors.New("synth: unknown method")
	ErrInvalidSampling = errors.New("synth: sampling rate must be positive")
)
