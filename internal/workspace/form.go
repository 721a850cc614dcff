package workspace

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidTransition is returned when an event is not allowed in the
// current state of a form.
var ErrInvalidTransition = errors.New("invalid form transition")

// State is the state of a Form.
type State int

const (
	Idle State = iota
	Editing
	Submitting
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Error:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Form tracks the create or edit dialog for one record type.
//
//	Idle       --Open-->       Editing(nil)
//	Idle       --Edit(r)-->    Editing(r)
//	Editing    --Cancel-->     Idle
//	Editing    --Submit-->     Submitting
//	Submitting --Succeed-->    Idle
//	Submitting --Fail(msg)-->  Error(msg)
//	Error      --Submit-->     Submitting
//	Error      --Cancel-->     Idle
//
// The record stays attached until the form returns to Idle, so a failed
// submission can be retried. Form is safe for concurrent use.
type Form[T any] struct {
	mu     sync.Mutex
	state  State
	record *T
	reason string
}

// State returns the current state.
func (f *Form[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Record returns the record being edited. It is nil when the form is
// idle or creates a new record.
func (f *Form[T]) Record() *T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

// Reason returns the failure reason in the Error state.
func (f *Form[T]) Reason() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reason
}

// Open opens the form for a new record.
func (f *Form[T]) Open() error {
	return f.transition("open", func() bool {
		if f.state != Idle {
			return false
		}
		f.state, f.record = Editing, nil
		return true
	})
}

// Edit opens the form for an existing record.
func (f *Form[T]) Edit(record T) error {
	return f.transition("edit", func() bool {
		if f.state != Idle {
			return false
		}
		f.state, f.record = Editing, &record
		return true
	})
}

// Cancel closes the form without submitting.
func (f *Form[T]) Cancel() error {
	return f.transition("cancel", func() bool {
		if f.state != Editing && f.state != Error {
			return false
		}
		f.reset()
		return true
	})
}

// Submit marks the form as submitted.
func (f *Form[T]) Submit() error {
	return f.transition("submit", func() bool {
		if f.state != Editing && f.state != Error {
			return false
		}
		f.state, f.reason = Submitting, ""
		return true
	})
}

// Succeed closes the form after a successful submission.
func (f *Form[T]) Succeed() error {
	return f.transition("succeed", func() bool {
		if f.state != Submitting {
			return false
		}
		f.reset()
		return true
	})
}

// Fail records a failed submission.
func (f *Form[T]) Fail(reason string) error {
	return f.transition("fail", func() bool {
		if f.state != Submitting {
			return false
		}
		f.state, f.reason = Error, reason
		return true
	})
}

func (f *Form[T]) reset() {
	f.state, f.record, f.reason = Idle, nil, ""
}

func (f *Form[T]) transition(event string, apply func() bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	from := f.state
	if !apply() {
		return fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, event, from)
	}

	return nil
}
