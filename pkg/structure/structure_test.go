package structure

import (
	"testing"

	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructure_Lifecycle(t *testing.T) {
	reg := registry.NewRegistry()
	root, _ := reg.Intern("root", domain.KindNode)
	act, _ := reg.Intern("act", domain.KindLeaf)

	s := New(reg)

	node, err := domain.NewNode(root, []domain.Position{act})
	require.NoError(t, err)
	leaf, err := domain.NewLeaf(act, domain.Always(0), []domain.Position{root})
	require.NoError(t, err)

	assert.True(t, s.Put(node))
	assert.ErrorIs(t, s.Finalize(), domain.ErrInvalidStructure, "leaf entry missing")

	assert.True(t, s.Put(leaf))
	assert.ErrorIs(t, s.Finalize(), domain.ErrInvalidStructure, "initial missing")

	assert.False(t, s.SetInitial(act), "leaves cannot be initial")
	assert.True(t, s.SetInitial(root))
	require.NoError(t, s.Finalize())
	assert.True(t, s.Finalized())

	replacement, _ := domain.NewNode(root, nil)
	assert.False(t, s.Put(replacement))
	assert.False(t, s.SetInitial(root))

	got, err := s.EntryByName("root")
	require.NoError(t, err)
	assert.Same(t, node, got)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []domain.Position{root}, s.Nodes())
	assert.Equal(t, []domain.Position{act}, s.Leaves())
	assert.Equal(t, root, s.Initial())
}

func TestStructure_RejectsForeignPositions(t *testing.T) {
	s := New(nil)
	foreign := domain.Position{ID: 0, Name: "ghost", Kind: domain.KindNode}
	n, _ := domain.NewNode(foreign, nil)

	assert.False(t, s.Put(n))
	assert.False(t, s.SetInitial(foreign))
	assert.ErrorIs(t, s.Finalize(), domain.ErrInvalidStructure)

	_, err := s.Entry(0)
	assert.ErrorIs(t, err, domain.ErrUnknownPosition)
	_, err = s.EntryByName("ghost")
	assert.ErrorIs(t, err, domain.ErrUnknownPosition)
}
