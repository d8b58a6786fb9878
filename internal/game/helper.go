package game

import "strings"

// Lines holds the winning index triples: rows, then columns, then diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate computes the status of a raw cell array.
func Evaluate(cells [CellCount]CellStatus) Status {
	return evaluate(cells)
}

func evaluate(cells [CellCount]CellStatus) Status {
	for _, line := range Lines {
		if w := lineWinner(cells, line); w != Empty {
			return Status{Winner: w, Over: true}
		}
	}

	for _, c := range cells {
		if c == Empty {
			return Status{}
		}
	}

	// Full board, no line: draw
	return Status{Over: true}
}

func lineWinner(cells [CellCount]CellStatus, line [3]int) CellStatus {
	var xs, os int
	for _, i := range line {
		switch cells[i] {
		case X:
			xs++
		case O:
			os++
		}
	}
	switch {
	case xs == 3:
		return X
	case os == 3:
		return O
	}
	return Empty
}

// String renders the board as a 3x3 grid.
func (b *Board) String() string {
	return Render(b.Cells(), func(_ int, c CellStatus) string { return c.String() }, "│", "─┼─┼─")
}

// Render lays cells out as three rows joined by rowSep lines, with colSep
// between the cells of a row. label draws a single cell.
func Render(cells [CellCount]CellStatus, label func(index int, c CellStatus) string, colSep, rowSep string) string {
	var sb strings.Builder
	for r := range 3 {
		if r > 0 {
			sb.WriteString(rowSep)
			sb.WriteByte('\n')
		}
		for c := range 3 {
			if c > 0 {
				sb.WriteString(colSep)
			}
			i := r*3 + c
			sb.WriteString(label(i, cells[i]))
		}
		if r < 2 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
