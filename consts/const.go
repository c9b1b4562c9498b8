package consts

const (
	MinPlayers = 2
	MaxPlayers = 10

	DeckSize       = 108
	StartingHand   = 7
	LowCardPenalty = 4

	DrawTwoAmount      = 2
	WildDrawFourAmount = 4

	ActionCardPoints = 20
	WildCardPoints   = 50
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// Errors with Exit set end the round; the rest are rejected locally and the
// decision is polled again on the next tick.
var (
	ErrorsInvalidMove           = NewErr(1, false, "Invalid move. ")
	ErrorsColorInvalid          = NewErr(2, false, "Color invalid. ")
	ErrorsNotYourTurn           = NewErr(3, false, "Not your turn. ")
	ErrorsNotExternallyDriven   = NewErr(4, false, "Seat is not externally driven. ")
	ErrorsSeatInvalid           = NewErr(5, false, "Seat invalid. ")
	ErrorsPlayersInvalid        = NewErr(6, false, "Players invalid. ")
	ErrorsRoundOver             = NewErr(7, false, "Round is over. ")
	ErrorsInsufficientCards     = NewErr(8, true, "Insufficient cards. ")
	ErrorsNoCardsToReplenish    = NewErr(9, true, "No cards to replenish. ")
	ErrorsIllegalSeatTransition = NewErr(10, true, "Illegal seat transition. ")
)
