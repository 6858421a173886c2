// Package table renders a transportation problem and an allocation matrix as
// an aligned text grid.
//
// Rendering happens in two stages so each can be tested on its own:
//
//	grid := table.Build(p, alloc, &table.Cell{Row: 1, Col: 0}, table.DefaultLabels)
//	// grid.Header, grid.Body, grid.Footer, grid.Widths are plain data
//	fmt.Println(grid.Render())
//
// Layout:
//
//	Supplier/Consumer | C1  | C2 | Supply
//	------------------+-----+----+-------
//	S1                | 5   | 0  | 5
//	S2                | [5] | 0  | 15
//	------------------+-----+----+-------
//	Demand            | 10  | 10 |
//
// Numbers go through FormatNumber: "0" near zero, integers without decimals,
// everything else with exactly two decimals. Output is a pure function of
// the inputs.
package table
