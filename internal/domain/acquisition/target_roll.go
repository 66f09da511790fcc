package acquisition

import (
	"fmt"
	"strings"
)

// RollKind tags what a TargetRoll represents
type RollKind int

const (
	// KindValue is an ordinary difficulty that a 2d6 roll must meet or exceed
	KindValue RollKind = iota
	KindImpossible
	KindAutomaticSuccess
	KindAutomaticFail
)

func (k RollKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindImpossible:
		return "impossible"
	case KindAutomaticSuccess:
		return "automatic_success"
	case KindAutomaticFail:
		return "automatic_fail"
	default:
		return fmt.Sprintf("RollKind(%d)", int(k))
	}
}

// Modifier is one labelled adjustment to a target number
type Modifier struct {
	Delta int    `json:"delta" yaml:"delta"`
	Label string `json:"label" yaml:"label"`
}

// TargetRoll is either a computed difficulty with its modifier breakdown or one of
// three sentinel outcomes carrying a reason. Values are immutable; the With* methods
// return modified copies.
type TargetRoll struct {
	kind      RollKind
	reason    string
	base      int
	baseLabel string
	modifiers []Modifier
}

// NewTargetRoll starts a difficulty from a base value such as a skill target number
func NewTargetRoll(base int, label string) TargetRoll {
	return TargetRoll{kind: KindValue, base: base, baseLabel: label}
}

// Impossible is a roll that can never succeed
func Impossible(reason string) TargetRoll {
	return TargetRoll{kind: KindImpossible, reason: reason}
}

// AutomaticSuccess is a roll that always succeeds without dice
func AutomaticSuccess(reason string) TargetRoll {
	return TargetRoll{kind: KindAutomaticSuccess, reason: reason}
}

// AutomaticFail is a roll that always fails without dice
func AutomaticFail(reason string) TargetRoll {
	return TargetRoll{kind: KindAutomaticFail, reason: reason}
}

func (t TargetRoll) Kind() RollKind   { return t.kind }
func (t TargetRoll) Reason() string   { return t.reason }
func (t TargetRoll) BaseValue() int   { return t.base }
func (t TargetRoll) BaseLabel() string { return t.baseLabel }

func (t TargetRoll) IsImpossible() bool       { return t.kind == KindImpossible }
func (t TargetRoll) IsAutomaticSuccess() bool { return t.kind == KindAutomaticSuccess }
func (t TargetRoll) IsAutomaticFail() bool    { return t.kind == KindAutomaticFail }

// IsSentinel reports whether the roll is decided without dice
func (t TargetRoll) IsSentinel() bool {
	return t.kind != KindValue
}

// Value returns base plus every modifier. Meaningless for sentinels, where it is 0.
func (t TargetRoll) Value() int {
	if t.kind != KindValue {
		return 0
	}
	value := t.base
	for _, m := range t.modifiers {
		value += m.Delta
	}
	return value
}

// Modifiers returns a copy of the ordered modifier list
func (t TargetRoll) Modifiers() []Modifier {
	return append([]Modifier(nil), t.modifiers...)
}

// WithModifier returns a copy with one more modifier. Sentinels are returned unchanged.
func (t TargetRoll) WithModifier(delta int, label string) TargetRoll {
	if t.kind != KindValue {
		return t
	}
	t.modifiers = append(append([]Modifier(nil), t.modifiers...), Modifier{Delta: delta, Label: label})
	return t
}

// WithModifiers appends several modifiers in order
func (t TargetRoll) WithModifiers(modifiers ...Modifier) TargetRoll {
	for _, m := range modifiers {
		t = t.WithModifier(m.Delta, m.Label)
	}
	return t
}

// ValueString renders the target the way reports show it, e.g. "8+" or "Impossible"
func (t TargetRoll) ValueString() string {
	switch t.kind {
	case KindImpossible:
		return "Impossible"
	case KindAutomaticSuccess:
		return "Automatic Success"
	case KindAutomaticFail:
		return "Automatic Failure"
	default:
		return fmt.Sprintf("%d+", t.Value())
	}
}

// Description explains how the target was built, or why it is a sentinel
func (t TargetRoll) Description() string {
	if t.kind != KindValue {
		return t.reason
	}
	parts := []string{fmt.Sprintf("%d (%s)", t.base, t.baseLabel)}
	for _, m := range t.modifiers {
		sign := "+"
		delta := m.Delta
		if delta < 0 {
			sign = "-"
			delta = -delta
		}
		parts = append(parts, fmt.Sprintf("%s %d (%s)", sign, delta, m.Label))
	}
	return strings.Join(parts, " ")
}

func (t TargetRoll) String() string {
	return fmt.Sprintf("TargetRoll(%s: %s)", t.ValueString(), t.Description())
}
