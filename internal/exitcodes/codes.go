package exitcodes

import "errors"

// Standard exit codes for anti-revoke
const (
	// Success indicates successful command completion
	Success = 0

	// GeneralError indicates a general/unknown error
	GeneralError = 1

	// InvalidArgs indicates invalid command-line arguments or flags
	InvalidArgs = 2

	// NetworkError indicates neither the bridge nor the registry returned data
	NetworkError = 4

	// ValidationError indicates a release payload was fetched but rejected
	// (malformed, missing fields, untrusted URL, bad version)
	ValidationError = 6
)

// CodeForError returns the appropriate exit code for an error.
// Unwraps ErrorWithCode for explicit codes, otherwise returns GeneralError.
func CodeForError(err error) int {
	if err == nil {
		return Success
	}

	var ec *ErrorWithCode
	if errors.As(err, &ec) {
		return ec.Code
	}

	return GeneralError
}
