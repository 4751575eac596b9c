package player

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"random":               Random,
		"hunt-target":          HuntTarget,
		"Hunt-Target-Max":      HuntTargetMax,
		" random ":             Random,
		"RandomPlayer":         Random,
		"HuntTargetPlayer":     HuntTarget,
		"HuntTargetPlayerMore": HuntTargetMax,
	}
	for input, want := range cases {
		got, err := ParseKind(input)
		require.NoError(t, err, "Should parse %q", input)
		require.Equal(t, want, got)
	}

	_, err := ParseKind("minimax")
	require.Error(t, err)
}

func TestKindText(t *testing.T) {
	t.Run("round trip through text", func(t *testing.T) {
		for _, kind := range Kinds() {
			text, err := kind.MarshalText()
			require.NoError(t, err)

			var got Kind
			require.NoError(t, got.UnmarshalText(text))
			require.Equal(t, kind, got)
		}
	})

	t.Run("unknown kinds are rejected", func(t *testing.T) {
		_, err := Kind(42).MarshalText()
		require.Error(t, err)
		require.Equal(t, "unknown", Kind(42).String())

		_, err = New(Kind(42), "nobody")
		require.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	p, err := New(Random, "a")
	require.NoError(t, err)
	require.IsType(t, &RandomPlayer{}, p)

	p, err = New(HuntTarget, "b")
	require.NoError(t, err)
	require.IsType(t, &HuntTargetPlayer{}, p)

	p, err = New(HuntTargetMax, "c")
	require.NoError(t, err)
	require.IsType(t, &HuntTargetMaxPlayer{}, p)
}
