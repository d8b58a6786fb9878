package game

import (
	"fmt"
	"sync"
)

// CellStatus is the content of a single board cell.
type CellStatus uint8

const (
	Empty CellStatus = iota
	X
	O
)

// CellCount is the number of cells on the board.
const CellCount = 9

func (c CellStatus) String() string {
	switch c {
	case Empty:
		return " "
	case X:
		return "X"
	case O:
		return "O"
	default:
		return fmt.Sprintf("CellStatus(%d)", uint8(c))
	}
}

// MarshalText encodes the cell as "X", "O" or an empty string.
func (c CellStatus) MarshalText() ([]byte, error) {
	if c == Empty {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

// Status is the evaluation of a board. Winner is Empty when nobody has won.
type Status struct {
	Winner CellStatus
	Over   bool
}

// IsDraw reports whether the game ended without a winner.
func (s Status) IsDraw() bool {
	return s.Over && s.Winner == Empty
}

// CellFunc is called with the index and new status of a changed cell.
type CellFunc func(index int, status CellStatus)

type watcher struct {
	id uint64
	fn CellFunc
}

// Board is a 3x3 board stored row-major. It is safe for concurrent use.
type Board struct {
	mu       sync.RWMutex
	cells    [CellCount]CellStatus
	watchers [CellCount][]watcher
	nextID   uint64
}

// NewBoard returns a board with every cell empty.
func NewBoard() *Board {
	return &Board{}
}

// ApplyMove places player on the cell at index if that cell is empty and reports
// whether it did. An index outside [0, 8] or an Empty player panics.
func (b *Board) ApplyMove(index int, player CellStatus) bool {
	mustIndex(index)
	if player != X && player != O {
		panic(fmt.Sprintf("game: invalid player %v", player))
	}

	b.mu.Lock()
	if b.cells[index] != Empty {
		b.mu.Unlock()
		return false
	}
	b.cells[index] = player
	fns := b.watchersLocked(index)
	b.mu.Unlock()

	notify(fns, index, player)
	return true
}

// Status evaluates the winning lines in order and then checks for a full board.
func (b *Board) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return evaluate(b.cells)
}

// Reset empties every cell. Watchers are notified only for cells that were occupied.
func (b *Board) Reset() {
	type change struct {
		index int
		fns   []CellFunc
	}

	b.mu.Lock()
	var changes []change
	for i := range b.cells {
		if b.cells[i] == Empty {
			continue
		}
		b.cells[i] = Empty
		changes = append(changes, change{index: i, fns: b.watchersLocked(i)})
	}
	b.mu.Unlock()

	for _, c := range changes {
		notify(c.fns, c.index, Empty)
	}
}

// Cell returns the status of the cell at index.
func (b *Board) Cell(index int) CellStatus {
	mustIndex(index)
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cells[index]
}

// Cells returns a snapshot of all cells.
func (b *Board) Cells() [CellCount]CellStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cells
}

// EmptyCells returns the indices of the empty cells in ascending order.
func (b *Board) EmptyCells() []int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	free := make([]int, 0, CellCount)
	for i, c := range b.cells {
		if c == Empty {
			free = append(free, i)
		}
	}
	return free
}

// Watch registers fn to be called whenever the cell at index changes.
// Callbacks run after the board lock is released. The returned func unregisters fn.
func (b *Board) Watch(index int, fn CellFunc) (cancel func()) {
	mustIndex(index)

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.watchers[index] = append(b.watchers[index], watcher{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			ws := b.watchers[index]
			for i, w := range ws {
				if w.id == id {
					b.watchers[index] = append(ws[:i:i], ws[i+1:]...)
					return
				}
			}
		})
	}
}

// WatchAll registers fn on every cell.
func (b *Board) WatchAll(fn CellFunc) (cancel func()) {
	cancels := make([]func(), 0, CellCount)
	for i := range CellCount {
		cancels = append(cancels, b.Watch(i, fn))
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

func (b *Board) watchersLocked(index int) []CellFunc {
	ws := b.watchers[index]
	if len(ws) == 0 {
		return nil
	}
	fns := make([]CellFunc, len(ws))
	for i, w := range ws {
		fns[i] = w.fn
	}
	return fns
}

func notify(fns []CellFunc, index int, status CellStatus) {
	for _, fn := range fns {
		fn(index, status)
	}
}

func mustIndex(index int) {
	if index < 0 || index >= CellCount {
		panic(fmt.Sprintf("game: cell index %d out of range [0, %d]", index, CellCount-1))
	}
}
