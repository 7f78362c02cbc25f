package sgf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dodgebc/weiqi-rules/weiqi"
)

func TestParseGame(t *testing.T) {
	text := `(;GM[1]FF[4]SZ[19]PB[Lee Sedol]PW[AlphaGo]RE[W+R]
C[opening \] with an escaped bracket]
;B[pd];W[dp]
;B[cd];W[]
;B[tt])`

	records, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	require.Equal(t, 19, rec.Size)
	require.Equal(t, "Lee Sedol", rec.Info["PB"])
	require.Equal(t, "AlphaGo", rec.Info["PW"])
	require.Equal(t, "W+R", rec.Info["RE"])
	require.Equal(t, "opening ] with an escaped bracket", rec.Info["C"])
	require.Equal(t, []weiqi.Move{
		weiqi.NewMove(weiqi.Black, 15, 3),
		weiqi.NewMove(weiqi.White, 3, 15),
		weiqi.NewMove(weiqi.Black, 2, 3),
		weiqi.NewMovePass(weiqi.White),
		weiqi.NewMovePass(weiqi.Black),
	}, rec.Moves)
}

func TestParseMainLineOnly(t *testing.T) {
	text := `(;SZ[19];B[aa](;W[bb](;B[cc])(;B[dd]))(;W[ee]))`
	records, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, []weiqi.Move{
		weiqi.NewMove(weiqi.Black, 0, 0),
		weiqi.NewMove(weiqi.White, 1, 1),
		weiqi.NewMove(weiqi.Black, 2, 2),
	}, records[0].Moves)
}

func TestParseCollection(t *testing.T) {
	records, err := Parse("(;B[aa];W[bb])\n(;SZ[19:19]B[cc])")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Len(t, records[0].Moves, 2)
	require.Equal(t, weiqi.BoardSize, records[0].Size, "missing size defaults to 19")
	require.Equal(t, []weiqi.Move{weiqi.NewMove(weiqi.Black, 2, 2)}, records[1].Moves)

	records, err = Parse("")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestParseUnsupported(t *testing.T) {
	for _, text := range []string{
		"(;SZ[9];B[aa])",
		"(;SZ[19:13];B[aa])",
		"(;SZ[19]HA[2]AB[dd][pp];W[qd])",
		"(;AW[aa])",
	} {
		_, err := Parse(text)
		require.ErrorIs(t, err, ErrUnsupported, text)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, text := range []string{
		"(;B[aa]",
		"(;B[aa];W[bb",
		";B[aa])",
		"(;B]aa[)",
		"(;[aa])",
	} {
		_, err := Parse(text)
		require.Error(t, err, text)
	}

	for _, text := range []string{"(;B[zz])", "(;W[a])", "(;SZ[big])"} {
		_, err := Parse(text)
		var parseErr ErrParse
		require.True(t, errors.As(err, &parseErr), "%s: %v", text, err)
	}
}
