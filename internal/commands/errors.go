package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeValidationFailed = "COMMAND_VALIDATION_FAILED"
	codeCanceled         = "COMMAND_CONTEXT_CANCELED"
	codeDeadline         = "COMMAND_CONTEXT_TIMEOUT"
	codeExecutionFailed  = "COMMAND_EXECUTION_FAILED"
)

func validationFailure(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(codeValidationFailed)
}

// classify tags an execution error and reports the matching telemetry
// status. Errors that already carry a go-errors category are kept as they
// are so domain categories survive the command layer.
func classify(err error) (TelemetryStatus, error) {
	switch {
	case err == nil:
		return TelemetryStatusSuccess, nil
	case errors.Is(err, context.Canceled):
		return TelemetryStatusContextError, tagCommand(err, "command execution cancelled", codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return TelemetryStatusContextError, tagCommand(err, "command execution deadline exceeded", codeDeadline)
	default:
		return TelemetryStatusFailed, tagCommand(err, "command execution failed", codeExecutionFailed)
	}
}

func tagCommand(err error, message, code string) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).WithTextCode(code)
}
