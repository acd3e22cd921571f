package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/rmacedo/registros-api/internal/models"
)

// Activation states
const (
	StateActive   = "active"
	StateInactive = "inactive"
)

// Activation events
const (
	EventActivate   = "activate"
	EventDeactivate = "deactivate"
)

// ActivationFSM wraps a record with its activation state machine.
// Records start active and only ever move between the two states
// through Toggle; there is no terminal state.
type ActivationFSM struct {
	record models.Record
	fsm    *fsm.FSM
}

// NewActivationFSM creates a state machine seeded from the record's
// current active flag.
func NewActivationFSM(record models.Record) *ActivationFSM {
	initial := StateInactive
	if record.IsActive() {
		initial = StateActive
	}

	return &ActivationFSM{
		record: record,
		fsm: fsm.NewFSM(
			initial,
			fsm.Events{
				{Name: EventActivate, Src: []string{StateInactive}, Dst: StateActive},
				{Name: EventDeactivate, Src: []string{StateActive}, Dst: StateInactive},
			},
			fsm.Callbacks{},
		),
	}
}

// Toggle flips the record between active and inactive and writes the
// resulting state back onto the record.
func (a *ActivationFSM) Toggle(ctx context.Context) error {
	event := EventActivate
	if a.record.IsActive() {
		event = EventDeactivate
	}

	if err := a.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("failed to toggle record activation: %w", err)
	}

	a.record.SetActive(a.fsm.Current() == StateActive)
	return nil
}

// Current returns the current state
func (a *ActivationFSM) Current() string {
	return a.fsm.Current()
}

// Can checks if a transition is possible
func (a *ActivationFSM) Can(event string) bool {
	return a.fsm.Can(event)
}
