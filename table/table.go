package table

import (
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/nwcorner/matrix"
	"github.com/katalvlaran/nwcorner/transport"
)

const (
	colSep  = " | "
	ruleSep = "-+-"
	ruleCh  = "-"
	lineSep = "\n"
)

// Cell addresses one allocation cell.
type Cell struct {
	Row int
	Col int
}

// Labels holds the fixed captions of the grid.
type Labels struct {
	Corner string // header of the label column
	Supply string // header of the supply-total column
	Demand string // caption of the footer row
}

// DefaultLabels are the captions used by the CLI.
var DefaultLabels = Labels{
	Corner: "Supplier/Consumer",
	Supply: "Supply",
	Demand: "Demand",
}

// Grid is the structured form of a rendered table: rows of already
// formatted cells plus the computed column widths.
type Grid struct {
	Header []string
	Body   [][]string
	Footer []string
	Widths []int // per column, in runes
}

// Build lays out p and alloc as a Grid.
//
// Header: Corner, one column per consumer label, Supply.
// Body:   supplier label, formatted allocation per consumer, supplier total.
// Footer: Demand, formatted demand per consumer, blank.
//
// The allocation at highlight is wrapped in brackets when it is > Eps;
// a nil highlight, or one pointing at a ≈0 cell, adds nothing.
// alloc must have the shape of p's cost matrix; missing cells render as "0".
//
// Complexity: O(m·n).
func Build(p *transport.Problem, alloc matrix.Matrix, highlight *Cell, labels Labels) Grid {
	var (
		rows, cols   = p.Rows(), p.Cols()
		supply       = p.Supply()
		demand       = p.Demand()
		supplyLabels = p.SupplyLabels()
		i, j         int
		v            float64
		cell         string
	)

	header := make([]string, 0, cols+2)
	header = append(header, labels.Corner)
	header = append(header, p.DemandLabels()...)
	header = append(header, labels.Supply)

	body := make([][]string, rows)
	for i = 0; i < rows; i++ {
		line := make([]string, 0, cols+2)
		line = append(line, supplyLabels[i])
		for j = 0; j < cols; j++ {
			v, _ = alloc.At(i, j)
			cell = FormatNumber(v)
			if highlight != nil && highlight.Row == i && highlight.Col == j && v > transport.Eps {
				cell = "[" + cell + "]"
			}
			line = append(line, cell)
		}
		line = append(line, FormatNumber(supply[i]))
		body[i] = line
	}

	footer := make([]string, 0, cols+2)
	footer = append(footer, labels.Demand)
	for j = 0; j < cols; j++ {
		footer = append(footer, FormatNumber(demand[j]))
	}
	footer = append(footer, "")

	g := Grid{Header: header, Body: body, Footer: footer}
	g.Widths = g.measure()

	return g
}

// measure returns the widest cell of every column across header, body and footer.
func (g Grid) measure() []int {
	widths := make([]int, len(g.Header))
	grow := func(row []string) {
		for c, s := range row {
			if n := utf8.RuneCountInString(s); n > widths[c] {
				widths[c] = n
			}
		}
	}
	grow(g.Header)
	for _, row := range g.Body {
		grow(row)
	}
	grow(g.Footer)

	return widths
}

// Render joins the grid into text: header, rule, body rows, rule, footer.
// Cells are left-justified to their column width and separated by " | ";
// rules are dashes joined by "-+-" so they span the same width as a row.
func (g Grid) Render() string {
	var sb strings.Builder
	rule := g.rule()

	g.writeRow(&sb, g.Header)
	sb.WriteString(lineSep)
	sb.WriteString(rule)
	for _, row := range g.Body {
		sb.WriteString(lineSep)
		g.writeRow(&sb, row)
	}
	sb.WriteString(lineSep)
	sb.WriteString(rule)
	sb.WriteString(lineSep)
	g.writeRow(&sb, g.Footer)

	return sb.String()
}

func (g Grid) writeRow(sb *strings.Builder, row []string) {
	for c, s := range row {
		if c > 0 {
			sb.WriteString(colSep)
		}
		sb.WriteString(s)
		if pad := g.Widths[c] - utf8.RuneCountInString(s); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
}

func (g Grid) rule() string {
	parts := make([]string, len(g.Widths))
	for c, w := range g.Widths {
		parts[c] = strings.Repeat(ruleCh, w)
	}

	return strings.Join(parts, ruleSep)
}

// Render is Build(...).Render().
func Render(p *transport.Problem, alloc matrix.Matrix, highlight *Cell, labels Labels) string {
	return Build(p, alloc, highlight, labels).Render()
}
