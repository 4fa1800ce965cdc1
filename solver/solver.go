// Package solver finds a winning jump sequence for the 33-hole cross
// peg solitaire board, using exhaustive depth-first backtracking with
// memoization of dead positions. The search finds any one solution; it
// makes no attempt to find all of them or a shortest one.
package solver

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/domino14/pegsol/board"
	"github.com/domino14/pegsol/move"
	"github.com/domino14/pegsol/movegen"
)

// ErrNoSolution means the search exhausted every line of play without
// reaching the winning position. It is an expected outcome for
// positions that are simply unsolvable, not a fault.
var ErrNoSolution = errors.New("no solution found from this position")

// DefaultMemFraction is the share of system memory the dead-position
// set may grow into.
const DefaultMemFraction = 0.25

// A Solver owns a board and searches it. The board is mutated in place
// during the search with explicit snapshot/restore at each branch
// point; callers that want the original position back afterward call
// Reset. That contract is deliberate: in-place mutation is much cheaper
// than copying the board into every recursive call.
//
// A Solver is not safe for concurrent use; parallelism happens inside
// Solve, on board copies.
type Solver struct {
	board       *board.Board
	deadset     *DeadSet
	threads     int
	memFraction float64

	nodes atomic.Uint64
}

// New creates a solver with the board in the standard starting
// position.
func New() *Solver {
	return &Solver{
		board:       board.NewBoard(),
		threads:     1,
		memFraction: DefaultMemFraction,
	}
}

// Reset restores the standard starting position: corners invalid,
// center open, all other cells full. Always succeeds.
func (s *Solver) Reset() {
	s.board.Reset()
}

// Board exposes the underlying board for display and position setup.
func (s *Solver) Board() *board.Board {
	return s.board
}

// SetThreads sets the number of parallel workers used to explore
// sibling root moves. Anything below 2 keeps the search single-threaded
// and fully deterministic.
func (s *Solver) SetThreads(threads int) {
	if threads < 2 {
		s.threads = 1
		return
	}
	s.threads = threads
}

// SetMemFraction bounds the dead-position set to a fraction of total
// system memory.
func (s *Solver) SetMemFraction(f float64) {
	s.memFraction = f
}

// Solve searches from the current board position and returns a winning
// move sequence in playback order, or ErrNoSolution. The board is left
// in whatever state exploration ended in; see the type comment.
//
// Single-threaded mode is deterministic: cells are scanned row-major
// and directions tried Up, Right, Down, Left, and the first win found
// in that order is returned. With threads > 1, sibling root moves are
// explored concurrently on independent board copies sharing one
// dead-position set; the first branch to find a win cancels the rest.
func (s *Solver) Solve(ctx context.Context) ([]move.Move, error) {
	tstart := time.Now()
	s.deadset = NewDeadSet(s.memFraction)
	s.nodes.Store(0)

	var seq []move.Move
	var err error
	if s.threads < 2 {
		seq, err = s.search(ctx, s.board, nil, false)
	} else {
		seq, err = s.parallelSolve(ctx)
	}

	log.Info().
		Uint64("nodes", s.nodes.Load()).
		Uint64("deadset-entries", s.deadset.Len()).
		Uint64("deadset-lookups", s.deadset.Lookups()).
		Uint64("deadset-hits", s.deadset.Hits()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")
	return seq, err
}

// search is the recursive core. It mutates b in place, snapshotting
// before branching and restoring after each failed branch. path is the
// move sequence that produced b from the root; a winning leaf returns
// it unchanged. Recursion depth is naturally bounded: every move
// removes a marble, so the tree is at most 31 plies deep from the
// standard start.
//
// Failed positions are added to the dead set only after their whole
// subtree has been exhausted. A cancelled branch returns the context
// error instead and records nothing, so a fingerprint in the set is
// always a finalized verdict.
func (s *Solver) search(ctx context.Context, b *board.Board, path []move.Move, shuffle bool) ([]move.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.nodes.Add(1)

	fp := b.Fingerprint()
	if s.deadset.Contains(fp) {
		return nil, ErrNoSolution
	}

	plays := movegen.GenAll(b)
	if len(plays) == 0 {
		// Leaf: either the single centered marble, or a stuck position.
		if b.Won() {
			return path, nil
		}
		s.deadset.Add(fp)
		return nil, ErrNoSolution
	}

	if shuffle {
		frand.Shuffle(len(plays), func(i, j int) {
			plays[i], plays[j] = plays[j], plays[i]
		})
	}

	snapshot := b.Copy()
	for _, m := range plays {
		movegen.Apply(b, m)
		seq, err := s.search(ctx, b, append(path, m), shuffle)
		if err == nil {
			// First success wins; propagate unchanged.
			return seq, nil
		}
		if !errors.Is(err, ErrNoSolution) {
			return nil, err
		}
		b.CopyFrom(snapshot)
	}
	s.deadset.Add(fp)
	return nil, ErrNoSolution
}

// parallelSolve forks the root: each legal first move gets its own
// board copy and is searched independently. Workers beyond the first
// shuffle their move ordering below the root to desynchronize
// exploration; all workers share the dead set.
func (s *Solver) parallelSolve(ctx context.Context) ([]move.Move, error) {
	plays := movegen.GenAll(s.board)
	if len(plays) == 0 {
		if s.board.Won() {
			return nil, nil
		}
		return nil, ErrNoSolution
	}
	log.Debug().Int("threads", s.threads).Int("root-moves", len(plays)).
		Msg("parallel-solve-config")

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := &errgroup.Group{}
	g.SetLimit(s.threads)

	var mu sync.Mutex
	var winner []move.Move

	for i, m := range plays {
		i, m := i, m
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			b := s.board.Copy()
			movegen.Apply(b, m)
			seq, err := s.search(ctx, b, []move.Move{m}, i > 0)
			if err == nil {
				mu.Lock()
				if winner == nil {
					winner = seq
				}
				mu.Unlock()
				cancel()
			}
			// ErrNoSolution and cancellation both just end this branch.
			return nil
		})
	}
	g.Wait()

	if winner != nil {
		return winner, nil
	}
	// Our own cancel only fires on a win, so with no winner any
	// cancellation came from the caller.
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return nil, ErrNoSolution
}
