package update

import (
	"errors"
	"fmt"
)

// Reason classifies why a check attempt produced no usable data.
type Reason string

const (
	ReasonTransportFailure     Reason = "TransportFailure"
	ReasonUnexpectedStatus     Reason = "UnexpectedStatus"
	ReasonBridgeRejected       Reason = "BridgeRejected"
	ReasonMalformedPayload     Reason = "MalformedPayload"
	ReasonMissingFields        Reason = "MissingFields"
	ReasonUntrustedURL         Reason = "UntrustedUrl"
	ReasonInvalidVersionFormat Reason = "InvalidVersionFormat"
	ReasonRuntimeFault         Reason = "RuntimeFault"
)

// ErrInvalidVersionFormat is returned when a version string is not three
// dot-separated unsigned integers.
var ErrInvalidVersionFormat = errors.New("invalid version format")

// FetchError describes a failed retrieval attempt.
type FetchError struct {
	Reason Reason
	Via    Source
	Status int
	Body   string
	Err    error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s (%s)", e.Reason, e.Via)
	if e.Status != 0 {
		msg += fmt.Sprintf(" status=%d", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// excerpt trims a response body for log lines.
func excerpt(s string) string {
	const max = 512
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
