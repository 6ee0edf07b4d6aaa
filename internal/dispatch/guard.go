package dispatch

import (
	"errors"
	"fmt"
)

// PanicError wraps a value recovered from a panicking plugin hook.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Detail returns the text carried by the panic when it was an error or a
// string, and "" for anything else.
func (e *PanicError) Detail() string {
	switch v := e.Value.(type) {
	case error:
		return errorText(v)
	case string:
		return v
	default:
		return ""
	}
}

// Unwrap exposes a panicked error value to errors.Is and errors.As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// guard runs fn and converts a panic into a *PanicError so nothing unwinds
// past the host boundary.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return fn()
}

// failure names one failing operation in the host log.
type failure struct {
	returned string
	panicked string
}

var (
	startFailure = failure{
		returned: "failed to start (constructor returned error)",
		panicked: "failed to start (constructor panicked)",
	}
	enableFailure = failure{
		returned: "failed to enable (Enable returned error)",
		panicked: "failed to enable (Enable panicked)",
	}
	disableFailure = failure{
		returned: "failed to disable (Disable returned error)",
		panicked: "failed to disable (Disable panicked)",
	}
	stopFailure = failure{
		returned: "destructor returned error",
		panicked: "destructor panicked",
	}
	messageFailure = failure{
		panicked: "ReceiveMessage panicked",
	}
)

// describe picks the phrase and detail text for err.
func (f failure) describe(err error) (phrase, detail string) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return f.panicked, pe.Detail()
	}
	return f.returned, errorText(err)
}

// errorText returns err.Error(), or the dynamic type of err when its Error
// method panics, as a typed nil pointer usually does.
func errorText(err error) (text string) {
	defer func() {
		if recover() != nil {
			text = fmt.Sprintf("%T", err)
		}
	}()
	return err.Error()
}

// reportLine formats a diagnostic the way it appears in Log.txt.
func reportLine(kind, phrase, detail string) string {
	if detail != "" {
		return fmt.Sprintf("Plugin %s %s: %s\n", kind, phrase, detail)
	}
	return fmt.Sprintf("Plugin %s %s\n", kind, phrase)
}
