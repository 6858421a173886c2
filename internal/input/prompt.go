package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/nwcorner/transport"
)

// Prompter collects a problem interactively, re-asking until every answer
// is well formed.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from in and writes prompts and complaints to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadProblem asks, in order, for the supplier count, the supplies, the
// consumer count, the demands and one cost row per supplier.
//
// Malformed answers print the reason and repeat the same question. End of
// input before the problem is complete returns io.ErrUnexpectedEOF; a
// cancelled ctx returns ctx.Err() at the next question.
func (p *Prompter) ReadProblem(ctx context.Context) (*transport.Problem, error) {
	p.say("\n=== Transportation problem input ===\n")

	suppliers, err := p.askCount(ctx, "suppliers", "Number of suppliers: ")
	if err != nil {
		return nil, err
	}
	supply, err := p.askNumbers(ctx, "supply", fmt.Sprintf("Supply of %d supplier(s), space-separated: ", suppliers), suppliers)
	if err != nil {
		return nil, err
	}
	consumers, err := p.askCount(ctx, "consumers", "Number of consumers: ")
	if err != nil {
		return nil, err
	}
	demand, err := p.askNumbers(ctx, "demand", fmt.Sprintf("Demand of %d consumer(s), space-separated: ", consumers), consumers)
	if err != nil {
		return nil, err
	}

	supplyLabels := transport.DefaultLabels("S", suppliers)
	p.say("Enter the cost matrix row by row (space-separated values).\nFor example: 4 7 6\n")
	costs := make([][]float64, suppliers)
	for i := range costs {
		prompt := fmt.Sprintf("Shipping costs from %s to each consumer: ", supplyLabels[i])
		if costs[i], err = p.askNumbers(ctx, "costs["+supplyLabels[i]+"]", prompt, consumers); err != nil {
			return nil, err
		}
	}

	return Spec{Supply: supply, Demand: demand, Costs: costs}.Problem()
}

func (p *Prompter) askCount(ctx context.Context, field, prompt string) (int, error) {
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := ParseCount(field, line)
		if err == nil {
			return n, nil
		}
		p.complain(err)
	}
}

func (p *Prompter) askNumbers(ctx context.Context, field, prompt string, want int) ([]float64, error) {
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return nil, err
		}
		vs, err := ParseNumbers(field, line, want)
		if err == nil {
			return vs, nil
		}
		p.complain(err)
	}
}

// ask prints prompt and returns one trimmed line.
func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.say(prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}

		return "", fmt.Errorf("input: read: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (p *Prompter) complain(err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		p.say(capitalize(verr.Reason) + ".\n")

		return
	}
	p.say(err.Error() + "\n")
}

func (p *Prompter) say(s string) { _, _ = io.WriteString(p.out, s) }

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
