package app_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/nwcorner/animate"
	"github.com/katalvlaran/nwcorner/internal/app"
	"github.com/katalvlaran/nwcorner/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(source config.Source) config.Config {
	cfg := config.Default()
	cfg.Source = source
	cfg.FrameDelay = 0

	return cfg
}

// assertInOrder checks that every needle occurs in text after the previous one.
func assertInOrder(t *testing.T, text string, needles ...string) {
	t.Helper()
	pos := 0
	for _, n := range needles {
		idx := strings.Index(text[pos:], n)
		require.GreaterOrEqual(t, idx, 0, "missing %q after offset %d", n, pos)
		pos += idx + len(n)
	}
}

func TestRun_Preset(t *testing.T) {
	var out, errOut bytes.Buffer
	code := app.Run(context.Background(), testConfig(config.SourcePreset), app.Options{
		Out: &out, ErrOut: &errOut, Pacer: animate.NopPacer{},
	})
	require.Equal(t, app.ExitOK, code, errOut.String())

	assertInOrder(t, out.String(),
		"The problem is already balanced",
		"Northwest-corner method, step by step:",
		"Step 1/4: S1 -> C1 = 20",
		"Progress: [#######.......................] 25%",
		"Step 4/4: S2 -> C3 = 20",
		"Progress: [##############################] 100%",
		"Initial basic feasible solution (final table):",
		"S1                | 20 | 10 | 0  | 30",
		"Total transportation cost: 420.00",
	)
	assert.NotContains(t, out.String(), "level=", "logs never reach stdout")
}

func TestRun_PromptUnbalanced(t *testing.T) {
	var out bytes.Buffer
	code := app.Run(context.Background(), testConfig(config.SourcePrompt), app.Options{
		In:  strings.NewReader("1\n10\n2\n4 4\n3 5\n"),
		Out: &out,
	})
	require.Equal(t, app.ExitOK, code)

	assertInOrder(t, out.String(),
		"Number of suppliers: ",
		"supply exceeds demand. A dummy consumer was added.",
		"Dummy participants have zero shipping costs.",
		"Step 3/3: S1 -> DummyC = 2",
		"Supplier/Consumer | C1 | C2 | DummyC | Supply",
		"Total transportation cost: 32.00",
	)
}

func TestRun_DebugLogsDummyAllocations(t *testing.T) {
	cfg := testConfig(config.SourceFile)
	cfg.LogLevel = slog.LevelDebug
	cfg.File = filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(cfg.File, []byte("supply: [3, 4]\ndemand: [5]\ncosts: [[2], [1]]\n"), 0o600))

	var out, errOut bytes.Buffer
	require.Equal(t, app.ExitOK, app.Run(context.Background(), cfg, app.Options{Out: &out, ErrOut: &errOut}))

	logs := errOut.String()
	assert.Contains(t, logs, "basis=")
	assert.Contains(t, logs, `msg="unshipped supply" run_id=`)
	assert.Contains(t, logs, "supplier=S2 qty=2")
	assert.NotContains(t, logs, "unmet demand")
	assert.NotContains(t, out.String(), "run_id=")
}

func TestRun_RandomIsReproducible(t *testing.T) {
	cfg := testConfig(config.SourceRandom)
	cfg.Seed = 2024
	cfg.Rows, cfg.Cols = 3, 4

	var a, b bytes.Buffer
	require.Equal(t, app.ExitOK, app.Run(context.Background(), cfg, app.Options{Out: &a}))
	require.Equal(t, app.ExitOK, app.Run(context.Background(), cfg, app.Options{Out: &b}))
	assert.Equal(t, a.String(), b.String())
	assert.Contains(t, a.String(), "already balanced")
}

func TestRun_RandomTimeSeed(t *testing.T) {
	cfg := testConfig(config.SourceRandom)
	fixed := func() time.Time { return time.Unix(1700000000, 0) }

	var a, b bytes.Buffer
	require.Equal(t, app.ExitOK, app.Run(context.Background(), cfg, app.Options{Out: &a, Now: fixed}))
	require.Equal(t, app.ExitOK, app.Run(context.Background(), cfg, app.Options{Out: &b, Now: fixed}))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("supply: [3]\ndemand: [5]\ncosts: [[2]]\n"), 0o600))
	cfg := testConfig(config.SourceFile)
	cfg.File = path

	var out bytes.Buffer
	require.Equal(t, app.ExitOK, app.Run(context.Background(), cfg, app.Options{Out: &out}))
	assertInOrder(t, out.String(),
		"demand exceeds supply. A dummy supplier was added.",
		"Step 2/2: DummyS -> C1 = 2",
		"Total transportation cost: 6.00",
	)
}

func TestRun_FileMissing(t *testing.T) {
	cfg := testConfig(config.SourceFile)
	cfg.File = filepath.Join(t.TempDir(), "nope.yaml")

	var out, errOut bytes.Buffer
	code := app.Run(context.Background(), cfg, app.Options{Out: &out, ErrOut: &errOut})
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, errOut.String(), "nwcorner: ")
	assert.Empty(t, out.String())
}

func TestRun_PromptEOF(t *testing.T) {
	var errOut bytes.Buffer
	code := app.Run(context.Background(), testConfig(config.SourcePrompt), app.Options{
		In: strings.NewReader("2\n"), Out: io.Discard, ErrOut: &errOut,
	})
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, errOut.String(), io.ErrUnexpectedEOF.Error())
}

func TestRun_InterruptedDuringAnimation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	code := app.Run(ctx, testConfig(config.SourcePreset), app.Options{
		Out: &out,
		Pacer: animate.PacerFunc(func(ctx context.Context) error {
			cancel()

			return ctx.Err()
		}),
	})
	assert.Equal(t, app.ExitInterrupted, code)
	assert.Contains(t, out.String(), "Step 1/4")
	assert.NotContains(t, out.String(), "Step 2/4")
	assert.True(t, strings.HasSuffix(out.String(), "\nInterrupted by user.\n"))
	assert.NotContains(t, out.String(), "Total transportation cost")
}

// lockedBuffer is a bytes.Buffer safe for the prompt goroutine and Run.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// TestRun_InterruptedWhilePrompting: a pending terminal read does not block
// the interrupt notice.
func TestRun_InterruptedWhilePrompting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	out := &lockedBuffer{}
	code := app.Run(ctx, testConfig(config.SourcePrompt), app.Options{In: pr, Out: out})
	assert.Equal(t, app.ExitInterrupted, code)
	assert.Contains(t, out.String(), "Interrupted by user.")
}
