package waveform

import (
	"errors"
	"fmt"
)

// Rhythm identifies a cardiac rhythm the generator knows how to draw.
type Rhythm string

const (
	Sinus              Rhythm = "sinus"
	Tachycardia        Rhythm = "tachycardia"
	Bradycardia        Rhythm = "bradycardia"
	AtrialFibrillation Rhythm = "atrial-fibrillation"
	AVBlock            Rhythm = "av-block"
)

// ErrUnknownRhythm is returned by ParseRhythm for identifiers outside the fixed set.
var ErrUnknownRhythm = errors.New("unknown rhythm")

var rhythmOrder = []Rhythm{Sinus, Tachycardia, Bradycardia, AtrialFibrillation, AVBlock}

var rhythmLabels = map[Rhythm]string{
	Sinus:              "Sinus",
	Tachycardia:        "Tachycardia",
	Bradycardia:        "Bradycardia",
	AtrialFibrillation: "Atrial fibrillation",
	AVBlock:            "AV block",
}

// Rhythms returns the supported rhythms in selector order.
func Rhythms() []Rhythm {
	out := make([]Rhythm, len(rhythmOrder))
	copy(out, rhythmOrder)
	return out
}

// Label returns the human readable name shown in the selector.
func (r Rhythm) Label() string {
	if l, ok := rhythmLabels[r]; ok {
		return l
	}
	return string(r)
}

func (r Rhythm) String() string { return string(r) }

// ParseRhythm maps an identifier or a display label back to a Rhythm.
func ParseRhythm(s string) (Rhythm, error) {
	for _, r := range rhythmOrder {
		if s == string(r) || s == rhythmLabels[r] {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRhythm, s)
}

// Next returns the rhythm after r in selector order, wrapping around.
// step may be negative.
func Next(r Rhythm, step int) Rhythm {
	idx := 0
	for i, x := range rhythmOrder {
		if x == r {
			idx = i
			break
		}
	}
	n := len(rhythmOrder)
	return rhythmOrder[((idx+step)%n+n)%n]
}
