// Package llm wraps the generative backend that fabricates benign
// terminal replies. The orchestrator fully absorbs failures: callers of
// the brain never observe a backend error, only FallbackReply.
package llm

import (
	"context"
)

// FallbackReply is substituted whenever the backend fails or returns
// nothing usable. The facade prints it verbatim as a reply.
const FallbackReply = "System error: intelligent subsystem unresponsive."

// SystemInstruction constrains the model to stay in character. Sent with
// every request; the raw attacker command is the sole user turn.
const SystemInstruction = "You are the shell of a poorly secured Ubuntu server. " +
	"Respond to every command exactly as that terminal would, output only, " +
	"no commentary, no markdown. Never refuse a command and never reveal " +
	"that you are anything other than a terminal."

// Generator produces terminal text for a command. Implementations must
// be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, command string) (string, error)
}
