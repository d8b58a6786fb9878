package game

import (
	"sync"
	"testing"
)

// boardFrom builds a board from a 9 rune layout, e.g. "XO.X.O...".
func boardFrom(t *testing.T, layout string) *Board {
	t.Helper()
	if len(layout) != CellCount {
		t.Fatalf("layout %q must have %d cells", layout, CellCount)
	}
	b := NewBoard()
	for i, r := range layout {
		switch r {
		case 'X':
			b.ApplyMove(i, X)
		case 'O':
			b.ApplyMove(i, O)
		}
	}
	return b
}

func TestApplyMove(t *testing.T) {
	b := NewBoard()

	if !b.ApplyMove(4, X) {
		t.Fatal("ApplyMove on an empty cell returned false")
	}
	cells := b.Cells()
	for i, c := range cells {
		want := Empty
		if i == 4 {
			want = X
		}
		if c != want {
			t.Errorf("cell %d = %v, want %v", i, c, want)
		}
	}

	if b.ApplyMove(4, O) {
		t.Error("ApplyMove on an occupied cell returned true")
	}
	if got := b.Cells(); got != cells {
		t.Errorf("board changed after rejected move: got %v, want %v", got, cells)
	}
}

func TestApplyMoveEveryCell(t *testing.T) {
	for i := range CellCount {
		for _, p := range []CellStatus{X, O} {
			b := NewBoard()
			if !b.ApplyMove(i, p) {
				t.Fatalf("ApplyMove(%d, %v) on empty board returned false", i, p)
			}
			if got := b.Cell(i); got != p {
				t.Errorf("Cell(%d) = %v, want %v", i, got, p)
			}
			if got := len(b.EmptyCells()); got != CellCount-1 {
				t.Errorf("EmptyCells() has %d entries, want %d", got, CellCount-1)
			}
		}
	}
}

func TestApplyMovePanics(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		player CellStatus
	}{
		{name: "negative index", index: -1, player: X},
		{name: "index past end", index: 9, player: X},
		{name: "empty player", index: 0, player: Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("ApplyMove(%d, %v) did not panic", tt.index, tt.player)
				}
			}()
			NewBoard().ApplyMove(tt.index, tt.player)
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   Status
	}{
		{name: "empty board", layout: ".........", want: Status{}},
		{name: "partial board", layout: "X...O....", want: Status{}},
		{name: "X wins first row", layout: "XXXOO....", want: Status{Winner: X, Over: true}},
		{name: "O wins second column", layout: "XO.XO..O.", want: Status{Winner: O, Over: true}},
		{name: "X wins main diagonal", layout: "XO..XO..X", want: Status{Winner: X, Over: true}},
		{name: "O wins anti-diagonal", layout: "X.OXO.O..", want: Status{Winner: O, Over: true}},
		{name: "draw", layout: "XOXXOOOXX", want: Status{Over: true}},
		{name: "win on a full board", layout: "XXXOOXOXO", want: Status{Winner: X, Over: true}},
		{name: "one empty cell left", layout: "XOXXOOOX.", want: Status{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := boardFrom(t, tt.layout).Status(); got != tt.want {
				t.Errorf("Status() got = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStatusEveryLine(t *testing.T) {
	for _, line := range Lines {
		for _, p := range []CellStatus{X, O} {
			var cells [CellCount]CellStatus
			for _, i := range line {
				cells[i] = p
			}
			want := Status{Winner: p, Over: true}
			if got := Evaluate(cells); got != want {
				t.Errorf("line %v filled with %v: got %+v, want %+v", line, p, got, want)
			}
		}
	}
}

func TestStatusLineOrder(t *testing.T) {
	// Not reachable in play, but the first line in order decides.
	cells := [CellCount]CellStatus{O, O, O, X, X, X, Empty, Empty, Empty}
	if got := Evaluate(cells); got.Winner != O {
		t.Errorf("expected the top row to win first, got %+v", got)
	}
}

func TestReset(t *testing.T) {
	b := boardFrom(t, "XOXXOOOXX")
	b.Reset()

	for i, c := range b.Cells() {
		if c != Empty {
			t.Errorf("cell %d = %v after Reset, want empty", i, c)
		}
	}
	if got := b.Status(); got != (Status{}) {
		t.Errorf("Status() after Reset = %+v, want in progress", got)
	}
}

func TestScenarioDiagonalWin(t *testing.T) {
	b := NewBoard()
	moves := []struct {
		index  int
		player CellStatus
	}{
		{0, X}, {1, O}, {4, X}, {2, O}, {8, X},
	}
	for _, m := range moves {
		if !b.ApplyMove(m.index, m.player) {
			t.Fatalf("ApplyMove(%d, %v) failed", m.index, m.player)
		}
	}

	want := Status{Winner: X, Over: true}
	if got := b.Status(); got != want {
		t.Errorf("Status() = %+v, want %+v", got, want)
	}
}

func TestScenarioDraw(t *testing.T) {
	b := NewBoard()
	layout := []CellStatus{X, O, X, X, O, O, O, X, X}
	for i, p := range layout {
		if !b.ApplyMove(i, p) {
			t.Fatalf("ApplyMove(%d, %v) failed", i, p)
		}
	}

	if got := b.Status(); !got.IsDraw() {
		t.Errorf("Status() = %+v, want draw", got)
	}
}

func TestWatch(t *testing.T) {
	b := NewBoard()

	type change struct {
		index  int
		status CellStatus
	}
	var got []change
	cancel := b.Watch(3, func(index int, status CellStatus) {
		// Callbacks run outside the lock, so reading is fine.
		if b.Cell(index) != status {
			t.Errorf("callback saw stale board")
		}
		got = append(got, change{index, status})
	})

	b.ApplyMove(0, X) // other cell
	b.ApplyMove(3, O)
	b.ApplyMove(3, X) // rejected
	b.Reset()
	b.Reset() // nothing occupied, no notification

	want := []change{{3, O}, {3, Empty}}
	if len(got) != len(want) {
		t.Fatalf("got %d notifications %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, got[i], want[i])
		}
	}

	cancel()
	cancel()
	b.ApplyMove(3, X)
	if len(got) != len(want) {
		t.Errorf("received notification after cancel: %v", got)
	}
}

func TestWatchAll(t *testing.T) {
	b := NewBoard()
	seen := map[int]CellStatus{}
	cancel := b.WatchAll(func(index int, status CellStatus) {
		seen[index] = status
	})
	defer cancel()

	b.ApplyMove(2, X)
	b.ApplyMove(7, O)

	if len(seen) != 2 || seen[2] != X || seen[7] != O {
		t.Errorf("unexpected notifications: %v", seen)
	}
}

func TestConcurrentMoves(t *testing.T) {
	b := NewBoard()
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.ApplyMove(4, X) {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if won != 1 {
		t.Errorf("expected exactly one successful move on the same cell, got %d", won)
	}
}

func TestBoardString(t *testing.T) {
	b := boardFrom(t, "X...O...X")
	want := "X│ │ \n─┼─┼─\n │O│ \n─┼─┼─\n │ │X"
	if got := b.String(); got != want {
		t.Errorf("String() got =\n%s\nwant =\n%s", got, want)
	}
}

func TestRender(t *testing.T) {
	var cells [CellCount]CellStatus
	cells[0], cells[8] = X, O

	got := Render(cells, func(i int, c CellStatus) string {
		if c == Empty {
			return string(rune('1' + i))
		}
		return c.String()
	}, "|", "-+-+-")

	want := "X|2|3\n-+-+-\n4|5|6\n-+-+-\n7|8|O"
	if got != want {
		t.Errorf("Render() got =\n%s\nwant =\n%s", got, want)
	}
}
