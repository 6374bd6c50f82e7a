package domain

import (
	"strconv"
	"strings"
)

// PhaseTag identifies one of the ten phases. The numeric value is the phase
// number; PhaseFinished marks a player who completed phase ten.
type PhaseTag int

const (
	PhaseDoublets4 PhaseTag = iota + 1
	PhaseSameColor6
	PhaseSequence4AndQuadruplet
	PhaseSequence8
	PhaseSameColor7
	PhaseSequence9
	PhaseQuadruplets2
	PhaseSameColorSequence4AndTriplet
	PhaseSequence5AndTriplet
	PhaseSequence5AndSameColorSequence3

	PhaseFinished
)

// FirstPhase and LastPhase bound the playable phases.
const (
	FirstPhase = PhaseDoublets4
	LastPhase  = PhaseSequence5AndSameColorSequence3
)

var phaseNames = map[PhaseTag]string{
	PhaseDoublets4:                      "DOUBLETS_4",
	PhaseSameColor6:                     "SAME_COLOR_6",
	PhaseSequence4AndQuadruplet:         "SEQUENCE_4_AND_QUADRUPLET",
	PhaseSequence8:                      "SEQUENCE_8",
	PhaseSameColor7:                     "SAME_COLOR_7",
	PhaseSequence9:                      "SEQUENCE_9",
	PhaseQuadruplets2:                   "QUADRUPLETS_2",
	PhaseSameColorSequence4AndTriplet:   "SAME_COLOR_SEQUENCE_4_AND_TRIPLET",
	PhaseSequence5AndTriplet:            "SEQUENCE_5_AND_TRIPLET",
	PhaseSequence5AndSameColorSequence3: "SEQUENCE_5_AND_SAME_COLOR_SEQUENCE_3",
	PhaseFinished:                       "FINISHED",
}

func (p PhaseTag) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "PHASE_" + strconv.Itoa(int(p))
}

// Playable reports whether p is one of the ten phases.
func (p PhaseTag) Playable() bool {
	return p >= FirstPhase && p <= LastPhase
}

// ParsePhaseTag accepts a phase name such as "DOUBLETS_4" (case-insensitive)
// or a phase number "1".."10".
func ParsePhaseTag(s string) (PhaseTag, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if tag := PhaseTag(n); tag.Playable() {
			return tag, nil
		}
		return 0, &UnknownPhaseError{Tag: s}
	}
	for tag, name := range phaseNames {
		if tag.Playable() && strings.EqualFold(name, s) {
			return tag, nil
		}
	}
	return 0, &UnknownPhaseError{Tag: s}
}

// Progress is a player's position in the linear phase sequence.
type Progress struct {
	Phase PhaseTag
}

// NewProgress starts a player at phase one.
func NewProgress() Progress {
	return Progress{Phase: FirstPhase}
}

// Finished reports whether every phase has been completed.
func (p Progress) Finished() bool {
	return p.Phase == PhaseFinished
}

// Advance moves to the next phase, or to PhaseFinished from the last one.
func (p Progress) Advance() (Progress, error) {
	if p.Finished() {
		return p, ErrProgressFinished
	}
	if !p.Phase.Playable() {
		return p, &UnknownPhaseError{Tag: p.Phase.String()}
	}
	return Progress{Phase: p.Phase + 1}, nil
}
