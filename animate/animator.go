package animate

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/nwcorner/matrix"
	"github.com/katalvlaran/nwcorner/table"
	"github.com/katalvlaran/nwcorner/transport"
)

// Logger is the subset of a structured logger the Animator uses.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
}

// Animator replays a step log onto Out.
//
// Zero values are usable: a nil Pacer means NopPacer, BarWidth ≤ 0 means
// DefaultBarWidth, empty Labels mean table.DefaultLabels and a nil Logger
// disables debug output.
type Animator struct {
	Out      io.Writer
	Pacer    Pacer
	BarWidth int
	Labels   table.Labels
	Logger   Logger
}

// Run replays steps against a fresh zero grid shaped like p.
//
// For step k of N (1-based) it sets the targeted cell, then writes:
//
//	\nStep k/N: <supplier> -> <consumer> = <qty>
//	<table with the cell highlighted>
//	Progress: [###...] P%
//
// and pauses via the Pacer. An empty log writes nothing and returns nil.
// The first write error or a cancelled context ends the replay; the error
// is returned as is (ctx.Err() for cancellation).
func (a *Animator) Run(ctx context.Context, p *transport.Problem, steps []transport.Step) error {
	if len(steps) == 0 {
		return nil
	}

	var (
		pacer  = a.pacer()
		width  = a.barWidth()
		labels = a.labels()
		sLbl   = p.SupplyLabels()
		dLbl   = p.DemandLabels()
		total  = len(steps)
	)
	partial, err := matrix.NewDense(p.Rows(), p.Cols())
	if err != nil {
		return fmt.Errorf("animate: %w", err)
	}

	for k, s := range steps {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = partial.Set(s.Row, s.Col, s.Quantity); err != nil {
			return fmt.Errorf("animate: step %d: %w", k+1, err)
		}

		frame := fmt.Sprintf("\nStep %d/%d: %s -> %s = %s\n%s\nProgress: %s\n",
			k+1, total, sLbl[s.Row], dLbl[s.Col], table.FormatNumber(s.Quantity),
			table.Render(p, partial, &table.Cell{Row: s.Row, Col: s.Col}, labels),
			ProgressBar(k+1, total, width))
		if _, err = io.WriteString(a.Out, frame); err != nil {
			return err
		}
		a.debug("frame written", "step", k+1, "of", total, "row", s.Row, "col", s.Col, "qty", s.Quantity)

		if err = pacer.Pause(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (a *Animator) pacer() Pacer {
	if a.Pacer == nil {
		return NopPacer{}
	}

	return a.Pacer
}

func (a *Animator) barWidth() int {
	if a.BarWidth <= 0 {
		return DefaultBarWidth
	}

	return a.BarWidth
}

func (a *Animator) labels() table.Labels {
	if a.Labels == (table.Labels{}) {
		return table.DefaultLabels
	}

	return a.Labels
}

func (a *Animator) debug(msg string, kv ...any) {
	if a.Logger != nil {
		a.Logger.Debug(msg, kv...)
	}
}
