// Package classify turns a raw command plus the active override state
// into an action. Pure: no storage, no clock, no I/O.
package classify

import (
	"strings"

	"github.com/kraken-hp/brain/internal/models"
)

const (
	// OverrideTarpitReply is printed when an operator has pinned the
	// session to tarpit, whatever the attacker typed.
	OverrideTarpitReply = "Admin override engaged. System lock."

	// HeuristicTarpitReply is printed when the destructive-command scan
	// trips.
	HeuristicTarpitReply = "Permission denied... initiating system lock."
)

// destructive is a conservative lexicon, not a parser. False positives
// (tarpitting a harmless match) are acceptable; false negatives are not.
var destructive = []string{
	"rm -rf",
	"wget",
	"curl",
	"chmod +x",
}

const inkTrigger = "cat /dev/random"

// Result is the classifier's verdict. Deferred means the reply payload
// must come from the generative backend; Payload is only meaningful when
// HasPayload is true (ink never carries one).
type Result struct {
	Action     models.Action
	Payload    string
	HasPayload bool
	Deferred   bool
}

// Classify applies the precedence order: operator override first, then
// the destructive lexicon, then the ink trigger, then defer to the
// backend. First match wins; no further checks run.
func Classify(command string, override *models.Action) Result {
	if override != nil {
		switch *override {
		case models.ActionTarpit:
			return Result{Action: models.ActionTarpit, Payload: OverrideTarpitReply, HasPayload: true}
		case models.ActionInk:
			return Result{Action: models.ActionInk}
		}
	}

	for _, needle := range destructive {
		if strings.Contains(command, needle) {
			return Result{Action: models.ActionTarpit, Payload: HeuristicTarpitReply, HasPayload: true}
		}
	}

	if strings.Contains(command, inkTrigger) {
		return Result{Action: models.ActionInk}
	}

	return Result{Action: models.ActionReply, Deferred: true}
}
