package override

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kraken-hp/brain/internal/models"
)

func TestSetGetClear(t *testing.T) {
	s := NewStore()

	_, ok := s.Get("s1")
	assert.False(t, ok)

	s.Set("s1", models.ActionTarpit)
	got, ok := s.Get("s1")
	assert.True(t, ok)
	assert.Equal(t, models.ActionTarpit, got)

	// Idempotent set, and overwrite with the other override.
	s.Set("s1", models.ActionInk)
	got, _ = s.Get("s1")
	assert.Equal(t, models.ActionInk, got)

	s.Clear("s1")
	_, ok = s.Get("s1")
	assert.False(t, ok)

	// Clearing again is fine.
	s.Clear("s1")
}

func TestSetRejectsNonOverrideActions(t *testing.T) {
	s := NewStore()
	s.Set("s1", models.ActionReply)
	s.Set("s1", models.StatusActive)
	s.Set("s1", models.ActionReset)
	_, ok := s.Get("s1")
	assert.False(t, ok)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.Set("s1", models.ActionTarpit)

	snap := s.Snapshot()
	assert.Equal(t, map[string]models.Action{"s1": models.ActionTarpit}, snap)

	delete(snap, "s1")
	_, ok := s.Get("s1")
	assert.True(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set("shared", models.ActionTarpit)
			s.Get("shared")
		}()
		go func() {
			defer wg.Done()
			s.Clear("shared")
			s.Snapshot()
		}()
	}
	wg.Wait()
}
