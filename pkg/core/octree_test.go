package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boundedBox struct {
	id     int
	bounds Bounds
}

func (b boundedBox) WorldBounds() Bounds { return b.bounds }

func TestQueryYieldsInfiniteObjectEvenWhenRayMissesFiniteRootBounds(t *testing.T) {
	root := NewOctree[boundedBox](NewBounds(NewPoint3(-1, -1, -1), NewPoint3(1, 1, 1)))

	finite := boundedBox{id: 1, bounds: NewBounds(NewPoint3(-1, -1, -1), NewPoint3(1, 1, 1))}
	infinite := boundedBox{id: 2, bounds: InfiniteBounds()}
	require.True(t, root.Insert(finite))
	require.True(t, root.Insert(infinite))

	// This ray never comes near the finite root box at all.
	ray := NewRay(NewPoint3(100, 100, 100), NewVec3(1, 0, 0))
	results := root.Query(ray, nil)

	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.id
	}
	assert.Contains(t, ids, 2)
	assert.NotContains(t, ids, 1)
}

func TestQueryStillCullsFiniteObjectsOutsideRootBounds(t *testing.T) {
	root := NewOctree[boundedBox](NewBounds(NewPoint3(-1, -1, -1), NewPoint3(1, 1, 1)))
	finite := boundedBox{id: 1, bounds: NewBounds(NewPoint3(-1, -1, -1), NewPoint3(1, 1, 1))}
	require.True(t, root.Insert(finite))

	missing := NewRay(NewPoint3(100, 100, 100), NewVec3(1, 0, 0))
	assert.Empty(t, root.Query(missing, nil))

	hitting := NewRay(NewPoint3(0, 0, -10), NewVec3(0, 0, 1))
	assert.NotEmpty(t, root.Query(hitting, nil))
}
