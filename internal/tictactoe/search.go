// Package tictactoe finds optimal moves by exhaustive minimax over the full game tree.
package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

// MaxValue is the best utility X can force from b when X is to move.
func MaxValue(b board.Board) int {
	return maxValue(b, nil)
}

// MinValue is the best utility O can force from b when O is to move.
func MinValue(b board.Board) int {
	return minValue(b, nil)
}

// Evaluate returns the minimax value of b for whichever side is to move.
func Evaluate(b board.Board) int {
	if b.CurrentPlayer() == board.PlayerX {
		return MaxValue(b)
	}
	return MinValue(b)
}

// maxValue and minValue recurse into each other; nodes, when not nil, counts visited positions.
func maxValue(b board.Board, nodes *int64) int {
	if nodes != nil {
		*nodes++
	}

	if b.IsTerminal() {
		return b.Utility()
	}

	v := math.MinInt
	for _, action := range b.LegalActions() {
		v = max(v, minValue(mustApply(b, action), nodes))
	}

	return v
}

func minValue(b board.Board, nodes *int64) int {
	if nodes != nil {
		*nodes++
	}

	if b.IsTerminal() {
		return b.Utility()
	}

	v := math.MaxInt
	for _, action := range b.LegalActions() {
		v = min(v, maxValue(mustApply(b, action), nodes))
	}

	return v
}

// mustApply is only called with actions taken from b.LegalActions.
func mustApply(b board.Board, action board.Action) board.Board {
	next, err := b.Apply(action)
	if err != nil {
		panic(fmt.Errorf("legal action rejected: %w", err))
	}

	return next
}
