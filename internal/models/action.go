package models

// Action is the closed set of responses the brain can hand back to the
// terminal facade, plus the bookkeeping values used for session status
// and the admin reset verb. Values are uppercase on the wire; the
// facade and dashboard compare them verbatim.
type Action string

const (
	// ActionReply returns generated terminal text to the attacker.
	ActionReply Action = "REPLY"
	// ActionTarpit stalls the session with a fixed deterrent message.
	ActionTarpit Action = "TARPIT"
	// ActionInk tells the facade to fabricate garbled output locally.
	// Ink never carries a payload.
	ActionInk Action = "INK"

	// StatusActive is the session status when no escalation has fired.
	StatusActive Action = "ACTIVE"

	// ActionReset is only valid on the admin override endpoint; it clears
	// a forced action and returns the session to active.
	ActionReset Action = "RESET"
)

// IsOverride reports whether a is one of the two actions an operator can
// pin a session to.
func (a Action) IsOverride() bool {
	return a == ActionTarpit || a == ActionInk
}
