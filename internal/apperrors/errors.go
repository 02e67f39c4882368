// Package apperrors defines the engine's error taxonomy.
package apperrors

// Error codes surfaced to presentation layers.
const (
	CodeDeckExhausted = iota + 1
	CodeStateMismatch
	CodeIllegalCardSelection
	CodeIllegalBid
	CodeInvariantViolation
	CodeConfirmRequired
)

// GameError is an engine error with a stable code.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Fatal reports whether the error indicates a sequencing or consistency bug
// rather than a rejectable submission.
func (e *GameError) Fatal() bool {
	return e.Code == CodeDeckExhausted || e.Code == CodeInvariantViolation
}

var (
	// ErrDeckExhausted: more cards were requested than the deck holds since
	// the last shuffle. Never expected in normal play.
	ErrDeckExhausted = &GameError{Code: CodeDeckExhausted, Message: "deck exhausted"}

	// ErrStateMismatch: a submission arrived while the engine was not
	// awaiting that kind of input. The caller should re-check the snapshot.
	ErrStateMismatch = &GameError{Code: CodeStateMismatch, Message: "engine is not awaiting this input"}

	// ErrIllegalCardSelection: the selection violates follow-suit legality or
	// indexes an empty hand slot. Engine state is unchanged.
	ErrIllegalCardSelection = &GameError{Code: CodeIllegalCardSelection, Message: "illegal card selection"}

	// ErrIllegalBid: the bid names an uncallable suit or passes when the
	// dealer is stuck. Engine state is unchanged.
	ErrIllegalBid = &GameError{Code: CodeIllegalBid, Message: "illegal bid"}

	// ErrInvariantViolation: an internal consistency check failed.
	ErrInvariantViolation = &GameError{Code: CodeInvariantViolation, Message: "internal consistency check failed"}

	// ErrConfirmRequired: a new game was requested mid-hand; the caller must
	// confirm before in-progress state is discarded.
	ErrConfirmRequired = &GameError{Code: CodeConfirmRequired, Message: "a game is in progress; confirm to discard it"}
)
