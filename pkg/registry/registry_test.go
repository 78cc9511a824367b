package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Intern(t *testing.T) {
	r := NewRegistry()

	root, err := r.Intern("root", domain.KindNode)
	require.NoError(t, err)
	assert.Equal(t, domain.PositionID(0), root.ID)

	leaf, err := r.Intern("act", domain.KindLeaf)
	require.NoError(t, err)
	assert.Equal(t, domain.PositionID(1), leaf.ID)

	again, err := r.Intern("root", domain.KindNode)
	require.NoError(t, err)
	assert.Equal(t, root, again)

	_, err = r.Intern("root", domain.KindLeaf)
	assert.ErrorIs(t, err, domain.ErrInvalidStructure)

	_, err = r.Intern(" ", domain.KindNode)
	assert.ErrorIs(t, err, domain.ErrInvalidStructure)

	_, err = r.Intern("x", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidStructure)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"root", "act"}, domain.Names(r.Positions()))
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	p, _ := r.Intern("root", domain.KindNode)

	got, ok := r.Lookup("root")
	assert.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = r.Lookup("nope")
	assert.False(t, ok)

	byID, err := r.Get(0)
	require.NoError(t, err)
	assert.Equal(t, p, byID)

	_, err = r.Get(5)
	assert.ErrorIs(t, err, domain.ErrUnknownPosition)
	_, err = r.Get(-1)
	assert.ErrorIs(t, err, domain.ErrUnknownPosition)
}

func TestRegistry_ConcurrentIntern(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Intern(fmt.Sprintf("n%d", i%10), domain.KindNode)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, r.Len())
}
