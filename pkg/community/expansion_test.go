package community

import (
	"testing"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
	"github.com/dd0wney/cluso-overlap/pkg/influence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedsFor(t *testing.T) {
	g := graph.FromUndirected([]graph.Edge{
		{From: "c", To: "a"},
		{From: "a", To: "b"},
		{From: "b", To: "d"},
	})
	groups := Cover{0: set("a", "b"), 1: set("c", "d")}

	members, err := SeedsFor(g, groups, SeedMembers)
	require.NoError(t, err)
	assert.Equal(t, []graph.NodeID{"a", "b"}, members[0])
	assert.Equal(t, []graph.NodeID{"c", "d"}, members[1])

	reps, err := SeedsFor(g, groups, SeedRepresentative)
	require.NoError(t, err)
	assert.Equal(t, []graph.NodeID{"a"}, reps[0])
	assert.Equal(t, []graph.NodeID{"c"}, reps[1])

	_, err = SeedsFor(g, groups, SeedPolicy(7))
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestSeedsFor_MemberMissingFromGraph(t *testing.T) {
	g := graph.FromUndirected([]graph.Edge{{From: "a", To: "b"}})
	groups := Cover{0: set("a", "b"), 1: set("ghost")}

	_, err := SeedsFor(g, groups, SeedMembers)
	require.Error(t, err)
	assert.ErrorIs(t, err, influence.ErrUnknownSeed)

	var derr *influence.DiffusionError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, graph.NodeID("ghost"), derr.Node)
}

func TestExpand_AdditiveAndThresholded(t *testing.T) {
	groups := Cover{0: set("a", "b"), 1: set("c")}
	seeds := map[int][]graph.NodeID{0: {"a", "b"}, 1: {"c"}}
	freqs := map[graph.NodeID]influence.FrequencyTable{
		"a": {"a": 20, "x": 8, "y": 7},
		"b": {"b": 20, "y": 3},
		"c": {"c": 20, "a": 12},
	}

	expanded, err := Expand(groups, seeds, freqs, 8)
	require.NoError(t, err)

	assert.ElementsMatch(t, []graph.NodeID{"a", "b", "x"}, expanded[0].Sorted())
	assert.ElementsMatch(t, []graph.NodeID{"a", "c"}, expanded[1].Sorted())

	// input untouched
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 1)
}

func TestExpand_MembersWithoutFrequenciesKept(t *testing.T) {
	groups := Cover{0: set("a", "b")}
	expanded, err := Expand(groups, map[int][]graph.NodeID{0: {"a"}}, nil, 1)
	require.NoError(t, err)
	assert.Len(t, expanded[0], 2)
}

func TestExpand_InvalidThreshold(t *testing.T) {
	_, err := Expand(Cover{}, nil, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestParseSeedPolicy(t *testing.T) {
	p, err := ParseSeedPolicy("representative")
	require.NoError(t, err)
	assert.Equal(t, SeedRepresentative, p)
	assert.Equal(t, "representative", p.String())

	p, err = ParseSeedPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SeedMembers, p)

	_, err = ParseSeedPolicy("random")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPartitionGroups(t *testing.T) {
	p := Partition{"a": 0, "b": 0, "c": 4}
	groups := p.Groups()

	assert.Equal(t, []int{0, 4}, groups.IDs())
	assert.True(t, groups[0].Has("a") && groups[0].Has("b"))
	assert.Equal(t, 3, len(groups.Universe()))
}

func TestSummarize(t *testing.T) {
	g := graph.FromUndirected([]graph.Edge{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "a", To: "c"},
		{From: "c", To: "d"},
	})

	summary := Summarize(g, Cover{1: set("a", "b", "c"), 0: set("c", "d", "x")})
	require.Len(t, summary, 2)

	assert.Equal(t, 0, summary[0].ID)
	assert.Equal(t, 3, summary[0].Size)
	assert.InDelta(t, 2.0/6.0, summary[0].Density, 1e-12)

	assert.Equal(t, 1, summary[1].ID)
	assert.Equal(t, []graph.NodeID{"a", "b", "c"}, summary[1].Nodes)
	assert.InDelta(t, 1.0, summary[1].Density, 1e-12)
}
