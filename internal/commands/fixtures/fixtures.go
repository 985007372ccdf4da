package fixtures

import "errors"

// ErrRegistrationRefused is returned by a RecordingRegistry configured to fail.
var ErrRegistrationRefused = errors.New("fixtures: registration refused")

// RecordingRegistry captures command handlers passed to RegisterCommand.
type RecordingRegistry struct {
	Handlers []any
	failAt   int
}

// NewRecordingRegistry constructs an empty registry recorder.
func NewRecordingRegistry() *RecordingRegistry {
	return &RecordingRegistry{
		Handlers: make([]any, 0),
		failAt:   -1,
	}
}

// FailAt makes the registry refuse the registration at the given zero-based
// position.
func (r *RecordingRegistry) FailAt(position int) *RecordingRegistry {
	r.failAt = position
	return r
}

// RegisterCommand records the handler.
func (r *RecordingRegistry) RegisterCommand(handler any) error {
	if r.failAt == len(r.Handlers) {
		return ErrRegistrationRefused
	}
	r.Handlers = append(r.Handlers, handler)
	return nil
}
