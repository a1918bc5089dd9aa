package ids_test

import (
	"testing"

	"github.com/opencivic/tallyengine/ids"

	"github.com/stretchr/testify/require"
)

func TestCanonicalOrder(t *testing.T) {
	in := []ids.OptionItem{
		{OptionId: "C", OrderIndex: 2},
		{OptionId: "A", OrderIndex: 0},
		{OptionId: "Z", OrderIndex: 0},
		{OptionId: "B", OrderIndex: 1},
	}
	out := ids.CanonicalOrder(in)
	require.Equal(t, []ids.OptionId{"A", "Z", "B", "C"}, ids.OptionIds(out))

	// Input slice must not be mutated.
	require.Equal(t, ids.OptionId("C"), in[0].OptionId)
}

func TestCanonicalOrderStableOnTieIndex(t *testing.T) {
	in := []ids.OptionItem{
		{OptionId: "B", OrderIndex: 5},
		{OptionId: "A", OrderIndex: 5},
	}
	out := ids.CanonicalOrder(in)
	require.Equal(t, []ids.OptionId{"A", "B"}, ids.OptionIds(out))
}

func TestIdLess(t *testing.T) {
	require.True(t, ids.UnitId("a").Less("b"))
	require.False(t, ids.UnitId("b").Less("a"))
	require.True(t, ids.OptionId("a").Less("b"))
}
