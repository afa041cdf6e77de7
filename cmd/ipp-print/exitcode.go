package main

import (
	"errors"

	"github.com/inkjetcore/goipp/goipp/ippclient"
)

// cliArgError marks an error as an argument/usage problem, mapping to
// exit code 3 rather than the generic transport/protocol code 1.
type cliArgError struct{ error }

func argError(msg string) error { return cliArgError{errors.New(msg)} }

// exitCodeFor maps an error returned from running a subcommand to the
// process exit code: 0 is handled by cobra's own success path, so this
// only ever sees a non-nil err.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var argErr cliArgError
	if errors.As(err, &argErr) {
		return 3
	}

	var stateErr *ippclient.PrinterStateError
	if errors.As(err, &stateErr) {
		return 2
	}

	return 1
}
