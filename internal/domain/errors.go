package domain

import "errors"

var (
	// ErrInvalidShape means the input dimensions cannot form a puzzle:
	// rows and columns differ, or the side is not a perfect square.
	ErrInvalidShape = errors.New("invalid grid shape")

	// ErrInputConflict means the given clues contradict each other before
	// any search begins.
	ErrInputConflict = errors.New("placement conflict in the provided configuration")

	// ErrNoSolution means the search exhausted every branch without
	// completing the grid.
	ErrNoSolution = errors.New("no solution found")
)
