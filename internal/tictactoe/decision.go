package tictactoe

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

// Decide returns the optimal action for the side to move, or false on a terminal board.
// Among equally good actions the first in row-major order wins.
func Decide(b board.Board) (board.Action, bool) {
	if b.IsTerminal() {
		return board.Action{}, false
	}

	actions := b.LegalActions()
	values := make([]int, len(actions))

	for i, action := range actions {
		values[i] = reply(b, action, nil)
	}

	best := pick(b.CurrentPlayer(), values)

	return actions[best], true
}

// Decision is the outcome of a Searcher run.
type Decision struct {
	Player board.Player `json:"-"`
	Action board.Action `json:"action"`
	Value  int          `json:"value"`
	Nodes  int64        `json:"nodes"`
}

// Searcher runs Decide and reports search statistics. With parallel set, every
// top-level action is searched in its own goroutine; the chosen action is the same
// either way.
type Searcher struct {
	parallel bool
}

func NewSearcher(parallel bool) *Searcher {
	return &Searcher{parallel: parallel}
}

func (that *Searcher) Decide(ctx context.Context, b board.Board) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, fmt.Errorf("search not started: %w", err)
	}

	if b.IsTerminal() {
		return Decision{}, fmt.Errorf("%w: board is terminal (%s)", apperror.ErrNoMoves, b.Outcome())
	}

	actions := b.LegalActions()
	values := make([]int, len(actions))
	nodes := make([]int64, len(actions))

	if that.parallel {
		group, groupCtx := errgroup.WithContext(ctx)

		for i, action := range actions {
			group.Go(func() error {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				values[i] = reply(b, action, &nodes[i])
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			return Decision{}, fmt.Errorf("parallel search failed: %w", err)
		}
	} else {
		for i, action := range actions {
			values[i] = reply(b, action, &nodes[i])
		}
	}

	player := b.CurrentPlayer()
	best := pick(player, values)

	// the root itself is one node
	total := int64(1)
	for _, n := range nodes {
		total += n
	}

	return Decision{
		Player: player,
		Action: actions[best],
		Value:  values[best],
		Nodes:  total,
	}, nil
}

// reply is the value of b after action, assuming the opponent answers optimally.
func reply(b board.Board, action board.Action, nodes *int64) int {
	next := mustApply(b, action)

	if b.CurrentPlayer() == board.PlayerX {
		return minValue(next, nodes)
	}
	return maxValue(next, nodes)
}

// pick returns the index of the best value for player, keeping the earliest on ties.
func pick(player board.Player, values []int) int {
	best := 0

	for i := 1; i < len(values); i++ {
		if player == board.PlayerX && values[i] > values[best] {
			best = i
		}

		if player == board.PlayerO && values[i] < values[best] {
			best = i
		}
	}

	return best
}
