package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinmr/iching/core"
	"github.com/martinmr/iching/ops"
)

func TestCatalogue_Order(t *testing.T) {
	canon := ops.Canonical.Operations()
	require.Len(t, canon, 13)
	assert.Equal(t, 13, ops.Canonical.Size())
	want := []string{
		"InverseLine(First)", "InverseLine(Second)", "InverseLine(Third)",
		"InverseLine(Fourth)", "InverseLine(Fifth)", "InverseLine(Sixth)",
		"InverseBottomTrigram", "InverseTopTrigram",
		"ReverseBottomTrigram", "ReverseTopTrigram",
		"MirrorTrigrams", "InverseHexagram", "ReverseHexagram",
	}
	got := make([]string, 0, len(canon))
	for _, o := range canon {
		got = append(got, o.String())
	}
	assert.Equal(t, want, got)

	ext := ops.Extended.Operations()
	require.Len(t, ext, 17)
	assert.Equal(t, 17, ops.Extended.Size())
	assert.Equal(t, ops.Of(ops.FlipTrigrams), ext[10])
	assert.Equal(t, ops.Of(ops.NuclearTrigrams), ext[12])
	assert.Equal(t, ops.Of(ops.MixTrigramsTopFirst), ext[16])

	for _, o := range ext {
		assert.NotEqual(t, ops.NoOp, o.Kind)
	}
}

func TestCatalogue_OperationsIsCopy(t *testing.T) {
	a := ops.Canonical.Operations()
	a[0] = ops.Of(ops.ReverseHexagram)
	assert.Equal(t, ops.Line(core.First), ops.Canonical.Operations()[0])
}

func TestNoOp_Identity(t *testing.T) {
	for _, h := range core.Hexagrams() {
		assert.Equal(t, h, ops.Start.Apply(h))
	}
}

// TestCanonical_Involutions checks op(op(h)) == h for every canonical
// operation and every hexagram.
func TestCanonical_Involutions(t *testing.T) {
	for _, o := range ops.Canonical.Operations() {
		require.True(t, o.IsInvolution(), o.String())
		for _, h := range core.Hexagrams() {
			assert.Equalf(t, h, o.Apply(o.Apply(h)), "%v on %d", o, h.Number)
		}
	}
}

func TestExtended_NonInvolutions(t *testing.T) {
	nuclear := ops.Of(ops.NuclearTrigrams)
	assert.False(t, nuclear.IsInvolution())
	assert.Equal(t, 1, int(nuclear.Apply(core.MustHexagram(1)).Number))
	assert.Equal(t, 64, int(nuclear.Apply(core.MustHexagram(63)).Number))
	assert.Equal(t, 63, int(nuclear.Apply(core.MustHexagram(64)).Number))
}

func TestParseCatalogue(t *testing.T) {
	c, err := ops.ParseCatalogue("Extended")
	require.NoError(t, err)
	assert.Equal(t, ops.Extended, c)

	c, err = ops.ParseCatalogue("")
	require.NoError(t, err)
	assert.Equal(t, ops.Canonical, c)

	_, err = ops.ParseCatalogue("everything")
	assert.ErrorIs(t, err, ops.ErrUnknownCatalogue)

	var u ops.Catalogue
	require.NoError(t, u.UnmarshalText([]byte("extended")))
	b, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "extended", string(b))
}

func TestParseOperation_RoundTrip(t *testing.T) {
	for _, o := range append(ops.Extended.Operations(), ops.Start) {
		got, err := ops.ParseOperation(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := ops.ParseOperation("InverseLine(Seventh)")
	assert.ErrorIs(t, err, ops.ErrUnknownOperation)
	_, err = ops.ParseOperation("Rotate")
	assert.ErrorIs(t, err, ops.ErrUnknownOperation)
}
