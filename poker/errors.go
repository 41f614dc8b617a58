package poker

import "errors"

var (
	// ErrInvalidCard is returned when a rank or suit is outside its domain.
	ErrInvalidCard = errors.New("invalid card")

	// ErrWrongHandSize is returned when a hand does not hold exactly five cards.
	ErrWrongHandSize = errors.New("wrong hand size")

	// ErrDuplicateCard is returned when the same card appears twice in a hand.
	ErrDuplicateCard = errors.New("duplicate card")
)
