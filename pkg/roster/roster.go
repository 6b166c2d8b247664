// Package roster defines the data model shared across the rollcall system:
// the raw tables loaded from meeting-platform exports and registration
// records, and the annotated records the reconciler produces from them.
package roster

import "strings"

// UnknownGroup is the sentinel local group assigned when no group could be
// identified for a participant.
const UnknownGroup = "Unknown"

// NoMatchFound is the sentinel match rule recorded when no matching stage
// produced a trace entry for a participant.
const NoMatchFound = "No Match Found"

// Labels used in the annotated attendance sheet.
const (
	LabelRegistered   = "Registered"
	LabelUnregistered = "Unregistered"
	LabelDelegate     = "Delegate"
	LabelObserver     = "Observer"
)

// Participant is one row of the meeting participant list. It is the source
// of truth for attendance and is never modified once loaded.
type Participant struct {
	DisplayName string
	Email       string
}

// Registrant is one row of the registration export. LocalGroup is optional;
// an empty string means the registration record carries no group.
type Registrant struct {
	BillingEmail string
	FirstName    string
	LastName     string
	LocalGroup   string
}

// Delegate is one row of the delegate list: a person formally appointed to
// represent a local group. LocalGroup is optional.
type Delegate struct {
	FullName   string
	Email      string
	LocalGroup string
}

// Record is one annotated attendance row. It is assembled incrementally by
// the reconciler's matching stages and treated as immutable afterwards.
type Record struct {
	DisplayName string
	Email       string

	// LocalGroup is one of the supplied group display names, or UnknownGroup.
	LocalGroup string

	Registered bool
	Delegate   bool

	// Trace records which matching rules fired, in stage order.
	Trace []string
}

// MatchRule returns the trace joined into a single descriptive string, or
// NoMatchFound when no rule fired.
func (r Record) MatchRule() string {
	if len(r.Trace) == 0 {
		return NoMatchFound
	}
	return strings.Join(r.Trace, " | ")
}

// RegistrationLabel returns the Registered/Unregistered label for the record.
func (r Record) RegistrationLabel() string {
	if r.Registered {
		return LabelRegistered
	}
	return LabelUnregistered
}

// RoleLabel returns the Delegate/Observer label for the record.
func (r Record) RoleLabel() string {
	if r.Delegate {
		return LabelDelegate
	}
	return LabelObserver
}
