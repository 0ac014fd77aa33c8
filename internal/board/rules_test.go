package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

func TestBoard_CurrentPlayer(t *testing.T) {
	t.Run("X starts", func(t *testing.T) {
		assert.Equal(t, PlayerX, Empty().CurrentPlayer())
	})

	t.Run("Players alternate along a game", func(t *testing.T) {
		// Given: the empty board and a sequence of moves
		b := Empty()
		moves := []Action{{1, 1}, {0, 0}, {2, 2}, {0, 2}, {0, 1}, {2, 1}, {1, 0}, {1, 2}, {2, 0}}
		expected := PlayerX

		for _, move := range moves {
			// Then: the side to move alternates on every ply
			require.Equal(t, expected, b.CurrentPlayer())

			next, err := b.Apply(move)
			require.NoError(t, err)

			b = next
			expected = expected.Opponent()
		}
	})

	t.Run("Defined on terminal board", func(t *testing.T) {
		// Given: a full board with five X marks
		b := fromRows(t, "XOX", "XOO", "OXX")

		// Then: O is reported as the side to move
		assert.Equal(t, PlayerO, b.CurrentPlayer())
	})
}

func TestBoard_LegalActions(t *testing.T) {
	t.Run("Row-major order", func(t *testing.T) {
		// Given: a board with the center and a corner taken
		b := fromRows(t, "X--", "-O-", "---")

		// When: listing legal actions
		actions := b.LegalActions()

		// Then: empty cells come back ordered by row, then column
		assert.Equal(t, []Action{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}, actions)
	})

	t.Run("Empty board has nine actions", func(t *testing.T) {
		assert.Len(t, Empty().LegalActions(), 9)
	})

	t.Run("Full board has none", func(t *testing.T) {
		b := fromRows(t, "XOX", "XOO", "OXX")

		assert.Empty(t, b.LegalActions())
	})
}

func TestBoard_Apply(t *testing.T) {
	t.Run("Places the mark of the side to move", func(t *testing.T) {
		// Given: a board where O is to move
		b := fromRows(t, "X--", "---", "---")

		// When: O plays the center
		next, err := b.Apply(Action{Row: 1, Col: 1})

		// Then: the center holds O and X is to move
		require.NoError(t, err)
		assert.Equal(t, MarkO, next[1][1])
		assert.Equal(t, PlayerX, next.CurrentPlayer())
	})

	t.Run("Leaves the input board unchanged", func(t *testing.T) {
		// Given: a board and a copy taken before the move
		b := fromRows(t, "X--", "-O-", "---")
		before := b

		// When: applying a move
		_, err := b.Apply(Action{Row: 2, Col: 2})
		require.NoError(t, err)

		// Then: the input is equal to the copy
		assert.Equal(t, before, b)
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with X in the corner
		b := fromRows(t, "X--", "---", "---")

		// When: O tries to play the same corner
		_, err := b.Apply(Action{Row: 0, Col: 0})

		// Then: ErrInvalidAction should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidAction)
	})

	t.Run("Error on out of range cell", func(t *testing.T) {
		for _, action := range []Action{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := Empty().Apply(action)

			require.ErrorIs(t, err, apperror.ErrInvalidAction, "action %s", action)
		}
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Every line wins for its owner", func(t *testing.T) {
		for _, player := range []Player{PlayerX, PlayerO} {
			for _, line := range Lines {
				// Given: a board with only this line filled
				var b Board
				for _, cell := range line {
					b[cell.Row][cell.Col] = player.Mark()
				}

				// When: checking the winner
				winner, ok := b.Winner()

				// Then: the owner of the line wins and the board is terminal
				require.True(t, ok, "line %v", line)
				assert.Equal(t, player, winner)
				assert.True(t, b.HasLine(player))
				assert.False(t, b.HasLine(player.Opponent()))
				assert.True(t, b.IsTerminal())
			}
		}
	})

	t.Run("No winner on ongoing board", func(t *testing.T) {
		b := fromRows(t, "XOX", "-O-", "X--")

		_, ok := b.Winner()

		assert.False(t, ok)
		assert.False(t, b.IsTerminal())
		assert.Equal(t, InProgress, b.Outcome())
	})

	t.Run("X takes precedence when both sides own a line", func(t *testing.T) {
		// Given: an unreachable board with a line for each side
		b := fromRows(t, "XXX", "OOO", "---")

		// When: checking the winner
		winner, ok := b.Winner()

		// Then: X is reported
		require.True(t, ok)
		assert.Equal(t, PlayerX, winner)
	})
}

func TestBoard_TerminalAndUtility(t *testing.T) {
	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no completed line
		b := fromRows(t, "XOX", "XOO", "OXX")

		// Then: it is terminal, has no winner and scores zero
		_, ok := b.Winner()
		assert.False(t, ok)
		assert.True(t, b.IsTerminal())
		assert.Equal(t, 0, b.Utility())
		assert.Equal(t, Draw, b.Outcome())
	})

	t.Run("X completes the top row", func(t *testing.T) {
		// Given: X owns the top row
		b := fromRows(t, "XXX", "OO-", "---")

		// Then: X wins and the board scores one
		winner, ok := b.Winner()
		require.True(t, ok)
		assert.Equal(t, PlayerX, winner)
		assert.True(t, b.IsTerminal())
		assert.Equal(t, 1, b.Utility())
		assert.Equal(t, XWins, b.Outcome())
	})

	t.Run("O completes a diagonal", func(t *testing.T) {
		// Given: O owns the anti-diagonal
		b := fromRows(t, "XXO", "XO-", "O--")

		// Then: O wins and the board scores minus one
		assert.True(t, b.IsTerminal())
		assert.Equal(t, -1, b.Utility())
		assert.Equal(t, OWins, b.Outcome())
	})

	t.Run("Ongoing board scores zero", func(t *testing.T) {
		assert.Equal(t, 0, Empty().Utility())
		assert.False(t, Empty().IsTerminal())
	})
}
