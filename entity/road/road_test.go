package road_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/nasch-settings/entity"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/road"
)

func params(periodic bool) entity.ParameterSet {
	return entity.ParameterSet{
		OutputFilename:   "x.json",
		ControllerType:   "Sync",
		VMax:             5,
		BrakeProbability: 0.2,
		RoadSize:         20,
		IsPeriodic:       periodic,
		AlphaWeight:      0.3,
		Beta:             0.4,
		Density:          0.1,
	}
}

func TestInitSingle(t *testing.T) {
	m := road.NewManager()
	m.InitSingle(params(false))
	roads := m.Roads()
	require.Len(t, roads, 1)
	assert.Equal(t, int32(0), roads[0].ID)
	assert.Equal(t, int32(20), roads[0].Size)
	assert.Equal(t, 0.3, roads[0].AlphaWeight)
	assert.Equal(t, 0.4, roads[0].Beta)
	assert.Empty(t, roads[0].SharedSections)
	assert.NotNil(t, roads[0].SharedSections)
}

func TestInitGridIDs(t *testing.T) {
	m := road.NewManager()
	m.InitGrid(params(true), 3)
	roads := m.Roads()
	require.Len(t, roads, 6)
	for i, r := range roads {
		assert.Equal(t, int32(i), r.ID)
		assert.Zero(t, r.AlphaWeight)
		assert.Zero(t, r.Beta)
		assert.True(t, r.IsPeriodic)
	}
	assert.True(t, road.IsVertical(road.VerticalID(2, 3), 3))
	assert.False(t, road.IsVertical(road.HorizontalID(0, 3), 3))
	assert.Equal(t, int32(5), road.HorizontalID(2, 3))
}

func TestAddSharedSection(t *testing.T) {
	m := road.NewManager()
	m.InitGrid(params(false), 2)
	s := entity.SharedSection{ConnectedRoadID: 3, OwnIndex: 7, ConnectedIndex: 2}
	require.NoError(t, m.AddSharedSection(0, s))
	assert.Equal(t, []entity.SharedSection{s}, m.Get(0).SharedSections)
	assert.Empty(t, m.Get(1).SharedSections)

	assert.Error(t, m.AddSharedSection(9, s))
	assert.Panics(t, func() { m.Get(9) })
}

func TestInitGridKeepsOrder(t *testing.T) {
	const n = 64
	m := road.NewManager()
	m.InitGrid(params(false), n)
	roads := m.Roads()
	require.Len(t, roads, 2*n)
	for i, r := range roads {
		assert.Equal(t, int32(i), r.ID)
		assert.Equal(t, r, *m.Get(int32(i)))
	}
}
