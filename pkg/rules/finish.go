package rules

// How the game ended, FinishNone while it goes on
type FinishType int

const (
	FinishNone FinishType = iota
	DrawKingsOnly
	DrawRepetition
	DrawTriangle
	DrawPowerEqual
	DrawMainRoad
	WhiteWin
	BlackWin
)

func (f FinishType) IsDraw() bool {
	return f >= DrawKingsOnly && f <= DrawMainRoad
}

func (f FinishType) IsWin() bool {
	return f == WhiteWin || f == BlackWin
}

// Whether the game is over
func (f FinishType) Finished() bool {
	return f != FinishNone
}

func (f FinishType) String() string {
	switch f {
	case FinishNone:
		return "None"
	case DrawKingsOnly:
		return "Draw(kings only)"
	case DrawRepetition:
		return "Draw(repetition)"
	case DrawTriangle:
		return "Draw(triangle)"
	case DrawPowerEqual:
		return "Draw(power equal)"
	case DrawMainRoad:
		return "Draw(main road)"
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	}
	return "Unknown"
}
