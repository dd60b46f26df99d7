package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertools/internal/config"
	"github.com/lox/pokertools/internal/handid"
	"github.com/lox/pokertools/internal/phh"
	"github.com/lox/pokertools/poker"
)

func testApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &App{
		Out:    &out,
		Logger: log.New(io.Discard),
		Config: config.Default(),
		Clock:  quartz.NewMock(t),
	}, &out
}

func TestCanonicalCmd(t *testing.T) {
	t.Parallel()

	t.Run("flop only", func(t *testing.T) {
		t.Parallel()
		app, out := testApp(t)
		cmd := &CanonicalCmd{Flop: "6s 8d 7c"}
		require.NoError(t, cmd.Run(app))
		assert.Contains(t, out.String(), "6c 7d 8h")
		assert.Contains(t, out.String(), "{c:d, d:h, h:s, s:c}")
		assert.Regexp(t, `raw flops\S*\s+24`, out.String())
	})

	t.Run("with holecards and turn", func(t *testing.T) {
		t.Parallel()
		app, out := testApp(t)
		cmd := &CanonicalCmd{Flop: "5s 8h As", Hole: "Ac Jc", Board: "2s"}
		require.NoError(t, cmd.Run(app))
		assert.Contains(t, out.String(), "5c 8d Ac")
		assert.Contains(t, out.String(), "Ah Jh")
		assert.Contains(t, out.String(), "2c")
	})

	t.Run("duplicate card", func(t *testing.T) {
		t.Parallel()
		app, _ := testApp(t)
		err := (&CanonicalCmd{Flop: "As As Kd"}).Run(app)
		assert.ErrorIs(t, err, poker.ErrDuplicateCard)
	})

	t.Run("holecard on the flop", func(t *testing.T) {
		t.Parallel()
		app, _ := testApp(t)
		err := (&CanonicalCmd{Flop: "5s 8h As", Hole: "As Jc"}).Run(app)
		assert.ErrorIs(t, err, poker.ErrDuplicateCard)
	})
}

func TestIsomorphsCmd(t *testing.T) {
	t.Parallel()
	app, out := testApp(t)
	require.NoError(t, (&IsomorphsCmd{Flop: "As 4s Ts"}).Run(app))
	for _, want := range []string{"Ac 4c Tc", "Ad 4d Td", "Ah 4h Th", "As 4s Ts", "4 isomorphs"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestCanonicalsCmd(t *testing.T) {
	t.Parallel()

	app, out := testApp(t)
	require.NoError(t, (&CanonicalsCmd{Count: true}).Run(app))
	assert.Equal(t, "1755\n", out.String())

	app, out = testApp(t)
	require.NoError(t, (&CanonicalsCmd{}).Run(app))
	assert.Contains(t, out.String(), "1755 canonical flops covering 22100 raw flops")
	assert.Contains(t, out.String(), "2c 2d 2h")

	path := filepath.Join(t.TempDir(), "flops.csv")
	app, _ = testApp(t)
	require.NoError(t, (&CanonicalsCmd{Output: path}).Run(app))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1756)
	assert.Equal(t, "slot,flop,pattern,weight", lines[0])
	assert.Equal(t, "0,2c 2d 2h,ABC,4", lines[1])
}

func TestRangeCmd(t *testing.T) {
	t.Parallel()

	app, out := testApp(t)
	require.NoError(t, (&RangeCmd{Notation: "AKs, QQ"}).Run(app))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines[0], "Ac Kc")
	assert.Contains(t, out.String(), "10 combos")

	app, out = testApp(t)
	require.NoError(t, (&RangeCmd{Notation: "AKs", Flop: "5s 8h As"}).Run(app))
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines[0], "Ah Kh")
	assert.Contains(t, lines[1], "As Ks")

	app, _ = testApp(t)
	assert.Error(t, (&RangeCmd{Notation: "AX"}).Run(app))
}

func TestPropsCmd(t *testing.T) {
	t.Parallel()

	app, out := testApp(t)
	require.NoError(t, (&PropsCmd{Hole: "Kc Qc", Flop: "2s 4s Ac"}).Run(app))
	assert.Contains(t, out.String(), "High Card")
	assert.Contains(t, out.String(), "bluff candidate")

	app, _ = testApp(t)
	err := (&PropsCmd{Hole: "Ac Qc", Flop: "2s 4s Ac"}).Run(app)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
}

func TestBluffsCmd(t *testing.T) {
	t.Parallel()

	app, out := testApp(t)
	require.NoError(t, (&BluffsCmd{Flop: "2s 4s Ac"}).Run(app))
	assert.Contains(t, out.String(), "Kc Qc")
	assert.Contains(t, out.String(), "6c 5c")
	assert.Contains(t, out.String(), "2 bluff candidates")

	app, out = testApp(t)
	zero := 0
	require.NoError(t, (&BluffsCmd{Flop: "2c 2d 2h", BoardPairs: "count", Required: &zero}).Run(app))
	assert.Contains(t, out.String(), "6 bluff candidates")

	app, _ = testApp(t)
	assert.Error(t, (&BluffsCmd{Flop: "2s 4s Ac", BoardPairs: "sometimes"}).Run(app))
}

func TestReportCmd(t *testing.T) {
	if testing.Short() {
		t.Skip("walks every canonical flop")
	}
	t.Parallel()

	app, out := testApp(t)
	require.NoError(t, (&ReportCmd{Workers: 4}).run(context.Background(), app))
	assert.Contains(t, out.String(), "1755 canonical flops covering 22100 raw flops in 0s")
	assert.Contains(t, out.String(), "ABC")
}

func TestDealCmdIsReproducible(t *testing.T) {
	t.Parallel()
	seed := int64(42)

	first, out1 := testApp(t)
	require.NoError(t, (&DealCmd{Seed: &seed, Players: 2}).Run(first))
	second, out2 := testApp(t)
	require.NoError(t, (&DealCmd{Seed: &seed, Players: 2}).Run(second))

	assert.Equal(t, out1.String(), out2.String())
	assert.Contains(t, out1.String(), "canonical flop")
}

func TestDealCmdWritesHandHistory(t *testing.T) {
	t.Parallel()
	seed := int64(7)
	path := filepath.Join(t.TempDir(), "deal.phh")

	app, out := testApp(t)
	require.NoError(t, (&DealCmd{Seed: &seed, Players: 3, PHH: path}).Run(app))
	assert.Contains(t, out.String(), "p3")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	hand, err := phh.Decode(f)
	require.NoError(t, err)

	require.Len(t, hand.Actions, 4)
	assert.True(t, strings.HasPrefix(hand.Actions[0], "d dh p1 "))
	assert.True(t, strings.HasPrefix(hand.Actions[3], "d db "))
	assert.Equal(t, 3, hand.SeatCount)
	assert.NoError(t, handid.Validate(hand.HandID))
	assert.Equal(t, int64(7), hand.Metadata["seed"])

	app, _ = testApp(t)
	assert.Error(t, (&DealCmd{Seed: &seed, Players: 10}).Run(app))
}

func TestNewApp(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	app, err := newApp(io.Discard, io.Discard, Globals{
		Config:   filepath.Join(dir, "missing.hcl"),
		LogLevel: "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", app.Config.LogLevel)
	assert.Equal(t, log.DebugLevel, app.Logger.GetLevel())

	_, err = newApp(io.Discard, io.Discard, Globals{
		Config:   filepath.Join(dir, "missing.hcl"),
		LogLevel: "loud",
	})
	assert.Error(t, err)

	path := filepath.Join(dir, "pokertools.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
bluff {
  board_pairs = "count"
}
`), 0o644))
	app, err = newApp(io.Discard, io.Discard, Globals{Config: path})
	require.NoError(t, err)
	assert.Equal(t, "count", app.Config.Bluff.BoardPairs)
}

func TestCLIParsesCommands(t *testing.T) {
	t.Parallel()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("pokertools"), kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"bluffs", "2s 4s Ac", "--board-pairs", "count", "--required", "1", "-l", "warn"})
	require.NoError(t, err)
	assert.Equal(t, "bluffs <flop>", ctx.Command())
	assert.Equal(t, "count", cli.Bluffs.BoardPairs)
	require.NotNil(t, cli.Bluffs.Required)
	assert.Equal(t, 1, *cli.Bluffs.Required)
	assert.Equal(t, "warn", cli.LogLevel)
	assert.Equal(t, "pokertools.hcl", cli.Config)
}
