package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCardNotInSet     = errors.New("card not available in the game set")
	ErrProgressFinished = errors.New("all phases already finished")
	ErrSlotOutOfRange   = errors.New("slot out of range")
)

// ValidationError rejects a card whose fields fall outside the card domain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid card %s: %s", e.Field, e.Reason)
}

// UnknownPhaseError is returned for a phase tag outside the catalog.
type UnknownPhaseError struct {
	Tag string
}

func (e *UnknownPhaseError) Error() string {
	return fmt.Sprintf("unknown phase: %s", e.Tag)
}
