// Package workflow implements the approval state machine for change
// requests. The per-type state sequence is declared as data: adding a
// request type means adding one entry to the sequences table.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"recipehub-admin-api/internal/model"
)

var (
	// ErrInvalidTransition is returned when the requested next state is not
	// the immediate successor of the current state for the request's type.
	ErrInvalidTransition = errors.New("invalid workflow transition")

	// ErrTerminalState is returned when advancing or rejecting a request
	// that is already LIVE or REJECTED.
	ErrTerminalState = errors.New("request is in a terminal state")
)

// sequences declares, per request type, the ordered states a request passes
// through from submission to LIVE. REJECTED is reachable from any
// non-terminal state and is not part of any sequence.
var sequences = map[model.RequestType][]model.State{
	model.TypeNewRecipe: {
		model.StatePendingChef,
		model.StatePendingCategory,
		model.StatePendingSupplyChain,
		model.StatePendingQuality,
		model.StatePendingMDM,
		model.StateAcknowledged,
		model.StateInExecution,
		model.StateLive,
	},
	model.TypeRecipeModification: {
		model.StatePendingChef,
		model.StatePendingCategory,
		model.StatePendingSupplyChain,
		model.StatePendingQuality,
		model.StatePendingMDM,
		model.StateAcknowledged,
		model.StateInExecution,
		model.StateLive,
	},
	model.TypeVersionExtend: {
		model.StatePendingCategory,
		model.StatePendingSupplyChain,
		model.StatePendingFinance,
		model.StatePendingMDM,
		model.StateAcknowledged,
		model.StateLive,
	},
	model.TypeVersionRollback: {
		model.StatePendingCategory,
		model.StatePendingSupplyChain,
		model.StatePendingFinance,
		model.StatePendingMDM,
		model.StateAcknowledged,
		model.StateLive,
	},
	model.TypeNewSizeCode: {
		model.StatePendingChef,
		model.StatePendingCategory,
		model.StatePendingMDM,
		model.StateAcknowledged,
		model.StateLive,
	},
	model.TypeNewInventory: {
		model.StatePendingSupplyChain,
		model.StatePendingQuality,
		model.StatePendingMDM,
		model.StateAcknowledged,
		model.StateInExecution,
		model.StateLive,
	},
	model.TypeUpdateInventory: {
		model.StatePendingSupplyChain,
		model.StatePendingQuality,
		model.StatePendingMDM,
		model.StateAcknowledged,
		model.StateInExecution,
		model.StateLive,
	},
	model.TypeExtraToppingUpdate: {
		model.StatePendingChef,
		model.StatePendingCategory,
		model.StatePendingMDM,
		model.StateAcknowledged,
		model.StateLive,
	},
}

// Sequence returns the ordered state sequence for a request type. The
// returned slice must not be modified.
func Sequence(t model.RequestType) ([]model.State, error) {
	seq, ok := sequences[t]
	if !ok {
		return nil, fmt.Errorf("no workflow sequence for request type %s", t)
	}
	return seq, nil
}

// Initial returns the first state a newly submitted request of type t enters.
func Initial(t model.RequestType) (model.State, error) {
	seq, err := Sequence(t)
	if err != nil {
		return "", err
	}
	return seq[0], nil
}

// Next returns the immediate successor of current in t's sequence. ok is
// false when current is the last state, terminal, or not in the sequence.
func Next(t model.RequestType, current model.State) (model.State, bool) {
	seq, ok := sequences[t]
	if !ok {
		return "", false
	}
	for i, s := range seq {
		if s == current {
			if i+1 < len(seq) {
				return seq[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// Advance moves the request to next, which must be the immediate successor
// of the current state for the request's type, or REJECTED. On success the
// request's state and state-change timestamp are updated in place; entering
// LIVE also stamps the go-live time. On failure the request is left
// unchanged.
func Advance(req *model.Request, next model.State) error {
	if req.State.IsTerminal() {
		return fmt.Errorf("%w: %s is %s", ErrTerminalState, req.ID, req.State)
	}
	if next == model.StateRejected {
		return Reject(req, "")
	}

	expected, ok := Next(req.Type, req.State)
	if !ok || next != expected {
		return fmt.Errorf("%w: %s cannot go from %s to %s",
			ErrInvalidTransition, req.Type, req.State, next)
	}

	now := time.Now().UTC()
	req.State = next
	req.StateChangedAt = now
	if next == model.StateLive {
		req.GoLiveAt = &now
	}
	return nil
}

// Reject moves the request to REJECTED from any non-terminal state,
// recording the reason. On failure the request is left unchanged.
func Reject(req *model.Request, reason string) error {
	if req.State.IsTerminal() {
		return fmt.Errorf("%w: %s is %s", ErrTerminalState, req.ID, req.State)
	}

	req.State = model.StateRejected
	req.StateChangedAt = time.Now().UTC()
	req.RejectionReason = reason
	return nil
}
