package main

import "errors"

// cliError tags an error with the exit code spec section 6 mandates:
// 2 for input validation failures (a registry/params/ballots file that
// could not be read, parsed, or translated), 3 for internal invariant
// violations (an error surfaced by the pipeline itself).
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func validationError(err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: 2, err: err}
}

func internalError(err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: 3, err: err}
}

// exitCodeFor maps a cobra RunE error to a process exit code: 2/3 for a
// tagged cliError, 1 for anything else (flag parsing errors, usage
// errors cobra raises on its own).
func exitCodeFor(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return 1
}
