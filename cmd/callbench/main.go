package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess   = 0 // Every run item succeeded
	ExitRunFailed = 1 // One or more run items failed or timed out
	ExitError     = 2 // Configuration or runtime error
)

// RunFailureError indicates the sequence itself executed, but one or
// more items failed or timed out.
type RunFailureError struct {
	Message string
}

func (e *RunFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var runFailureErr *RunFailureError
		if errors.As(err, &runFailureErr) {
			os.Exit(ExitRunFailed)
		}

		os.Exit(ExitError)
	}
}
