package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodePos(id int, name string) Position {
	return Position{ID: PositionID(id), Name: name, Kind: KindNode}
}

func leafPos(id int, name string) Position {
	return Position{ID: PositionID(id), Name: name, Kind: KindLeaf}
}

func TestNode_SelectReturnsItself(t *testing.T) {
	root := nodePos(0, "root")
	n, err := NewNode(root, []Position{nodePos(1, "a"), leafPos(2, "b")})
	require.NoError(t, err)

	got, err := n.Select(ProcessedInput{})
	require.NoError(t, err)
	assert.Equal(t, root, got)
	assert.Equal(t, []string{"a", "b"}, Names(n.Links()))
}

func TestNewNode_RejectsLeafPosition(t *testing.T) {
	_, err := NewNode(leafPos(0, "x"), nil)
	assert.ErrorIs(t, err, ErrInvalidStructure)
}

func TestLeaf_Select(t *testing.T) {
	forward := []Position{nodePos(0, "A"), nodePos(1, "B"), nodePos(2, "C")}

	tests := []struct {
		name    string
		decider Decider
		want    string
		wantErr bool
	}{
		{"Index One", Always(1), "B", false},
		{"Index Zero", Always(0), "A", false},
		{"Last Index", Always(2), "C", false},
		{"Too Large", Always(3), "", true},
		{"Negative", Always(-1), "", true},
		{"Decider Error", DecideFunc(func(ProcessedInput) (int, error) {
			return 0, errors.New("boom")
		}), "", true},
		{"Decider Panic", DecideFunc(func(ProcessedInput) (int, error) {
			panic("bad decider")
		}), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf, err := NewLeaf(leafPos(3, "act"), tt.decider, forward)
			require.NoError(t, err)

			got, err := leaf.Select(ProcessedInput{})
			if tt.wantErr {
				var de *DecisionError
				require.ErrorAs(t, err, &de)
				assert.Equal(t, "act", de.Leaf)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestLeaf_ResolveReportsIndex(t *testing.T) {
	leaf, err := NewLeaf(leafPos(2, "act"), Always(1), []Position{nodePos(0, "A"), nodePos(1, "B")})
	require.NoError(t, err)

	idx, pos, err := leaf.Resolve(ProcessedInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "B", pos.Name)
	assert.Nil(t, leaf.Links())
}

func TestNewLeaf_Validation(t *testing.T) {
	fwd := []Position{nodePos(0, "A")}

	_, err := NewLeaf(nodePos(1, "x"), Always(0), fwd)
	assert.ErrorIs(t, err, ErrInvalidStructure)

	_, err = NewLeaf(leafPos(1, "x"), nil, fwd)
	assert.ErrorIs(t, err, ErrInvalidStructure)

	_, err = NewLeaf(leafPos(1, "x"), Always(0), nil)
	assert.ErrorIs(t, err, ErrInvalidStructure)

	_, err = NewLeaf(leafPos(1, "x"), Always(0), []Position{leafPos(2, "y")})
	assert.ErrorIs(t, err, ErrInvalidStructure)
}
