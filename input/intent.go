package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentTurnLeft
	IntentTurnRight
	IntentQuit
)

func (i IntentType) String() string {
	switch i {
	case IntentTurnLeft:
		return "turn-left"
	case IntentTurnRight:
		return "turn-right"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}
