// Package app wires the solver end to end for the nwcorner command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/nwcorner/animate"
	"github.com/katalvlaran/nwcorner/internal/config"
	"github.com/katalvlaran/nwcorner/internal/input"
	"github.com/katalvlaran/nwcorner/internal/logging"
	"github.com/katalvlaran/nwcorner/table"
	"github.com/katalvlaran/nwcorner/transport"
)

// Exit codes returned by Run.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

const (
	msgInterrupted = "\nInterrupted by user.\n"
	msgBalanced    = "\nThe problem is already balanced, proceeding to the solution.\n"
	msgDummyZero   = "Dummy participants have zero shipping costs.\n"
	msgAnimation   = "\nNorthwest-corner method, step by step:\n"
	msgFinal       = "\nInitial basic feasible solution (final table):\n"
	fmtTotalCost   = "\nTotal transportation cost: %.2f\n"
)

// Options carries the collaborators Run needs besides the configuration.
// Zero fields get production defaults.
//
// Out must tolerate concurrent writes when Source is prompt: after
// cancellation Run writes the interrupt notice while the abandoned prompt
// goroutine may still print a question. *os.File satisfies this.
type Options struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Pacer overrides the frame pacing derived from cfg.FrameDelay.
	Pacer animate.Pacer

	// Now seeds the random source when cfg.Seed is 0.
	Now func() time.Time
}

// Run obtains a problem from the configured source, balances it, replays the
// northwest-corner steps, prints the final table and the total cost.
//
// Output goes to opts.Out in this order: balancing notice, one frame per
// step, final table, total cost. Diagnostics go to opts.ErrOut.
// Cancellation at any point prints a one-line notice and returns ExitInterrupted.
func Run(ctx context.Context, cfg config.Config, opts Options) int {
	opts = opts.withDefaults(cfg)
	log := logging.NewText(opts.ErrOut, cfg.LogLevel).With("run_id", uuid.NewString())

	err := solve(ctx, cfg, opts, log)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		log.Debug("run interrupted", "err", err)
		_, _ = io.WriteString(opts.Out, msgInterrupted)

		return ExitInterrupted
	default:
		log.Error("run failed", "err", err)
		_, _ = fmt.Fprintf(opts.ErrOut, "nwcorner: %v\n", err)

		return ExitFailure
	}
}

func solve(ctx context.Context, cfg config.Config, opts Options, log *logging.SlogLogger) error {
	problem, err := loadProblem(ctx, cfg, opts)
	if err != nil {
		return err
	}
	log.Info("problem loaded", "source", cfg.Source, "suppliers", problem.Rows(), "consumers", problem.Cols())

	balanced, notice := transport.Balance(problem)
	if notice != nil {
		log.Info("problem balanced", "kind", notice.Kind, "gap", notice.Gap)
		if err = write(opts.Out, "\n"+notice.String()+"\n"+msgDummyZero); err != nil {
			return err
		}
	} else if err = write(opts.Out, msgBalanced); err != nil {
		return err
	}

	plan, err := transport.NorthWest(balanced)
	if err != nil {
		return err
	}
	log.Debug("plan computed", "steps", len(plan.Steps), "degenerate", plan.IsDegenerate(), "basis", plan.Basis())
	logDummyAllocations(log, balanced, plan)

	if err = write(opts.Out, msgAnimation); err != nil {
		return err
	}
	anim := &animate.Animator{
		Out:      opts.Out,
		Pacer:    opts.Pacer,
		BarWidth: cfg.BarWidth,
		Labels:   table.DefaultLabels,
		Logger:   log,
	}
	if err = anim.Run(ctx, balanced, plan.Steps); err != nil {
		return err
	}

	final := msgFinal + table.Render(balanced, plan.Allocation, nil, table.DefaultLabels) + "\n"
	if err = write(opts.Out, final); err != nil {
		return err
	}
	cost, err := transport.TotalCost(balanced, plan.Allocation)
	if err != nil {
		return err
	}
	log.Info("solution ready", "total_cost", cost)

	return write(opts.Out, fmt.Sprintf(fmtTotalCost, cost))
}

// logDummyAllocations reports quantities routed to a dummy participant, i.e.
// supply that stays unshipped or demand that stays unmet.
func logDummyAllocations(log *logging.SlogLogger, p *transport.Problem, plan *transport.Plan) {
	sLbl, dLbl := p.SupplyLabels(), p.DemandLabels()
	for _, s := range plan.Steps {
		if transport.IsZero(s.Quantity) {
			continue
		}
		switch {
		case p.IsDummyRow(s.Row):
			log.Debug("unmet demand", "consumer", dLbl[s.Col], "qty", s.Quantity)
		case p.IsDummyCol(s.Col):
			log.Debug("unshipped supply", "supplier", sLbl[s.Row], "qty", s.Quantity)
		}
	}
}

// loadProblem dispatches on cfg.Source.
func loadProblem(ctx context.Context, cfg config.Config, opts Options) (*transport.Problem, error) {
	switch cfg.Source {
	case config.SourcePreset:
		return input.Preset()
	case config.SourceRandom:
		seed := cfg.Seed
		if seed == 0 {
			seed = opts.Now().UnixNano()
		}

		return input.Random(cfg.Rows, cfg.Cols, rand.New(rand.NewSource(seed)))
	case config.SourceFile:
		return input.LoadFile(cfg.File)
	default:
		return prompt(ctx, input.NewPrompter(opts.In, opts.Out))
	}
}

// prompt runs the blocking prompt loop so that an interrupt is honoured even
// while a read from the terminal is pending. On cancellation the goroutine is
// abandoned; it exits at its next question or when In is closed.
func prompt(ctx context.Context, p *input.Prompter) (*transport.Problem, error) {
	type result struct {
		problem *transport.Problem
		err     error
	}
	done := make(chan result, 1)
	go func() {
		problem, err := p.ReadProblem(ctx)
		done <- result{problem: problem, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.problem, r.err
	}
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)

	return err
}

func (o Options) withDefaults(cfg config.Config) Options {
	if o.In == nil {
		o.In = eofReader{}
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.ErrOut == nil {
		o.ErrOut = io.Discard
	}
	if o.Pacer == nil {
		o.Pacer = animate.SleepPacer{Delay: cfg.FrameDelay}
	}
	if o.Now == nil {
		o.Now = time.Now
	}

	return o
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
