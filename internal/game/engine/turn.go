package engine

import (
	"blackjack/internal/game/evaluator"
	"blackjack/internal/game/table"
)

// CharlieCards 五张不爆牌直接获胜
const CharlieCards = 5

// State 玩家回合状态
type State int

const (
	AwaitingMove State = iota
	Busted
	CharlieWin
	Stood
)

func (s State) String() string {
	switch s {
	case AwaitingMove:
		return "awaiting_move"
	case Busted:
		return "busted"
	case CharlieWin:
		return "charlie_win"
	case Stood:
		return "stood"
	}
	return "unknown"
}

func (s State) Terminal() bool {
	return s != AwaitingMove
}

// Move 玩家动作
type Move int

const (
	MoveHit Move = iota
	MoveStand
	MoveDoubleDown
)

func (m Move) String() string {
	switch m {
	case MoveHit:
		return "hit"
	case MoveStand:
		return "stand"
	case MoveDoubleDown:
		return "double_down"
	}
	return "unknown"
}

// Key 输入时使用的单字母
func (m Move) Key() string {
	switch m {
	case MoveHit:
		return "H"
	case MoveStand:
		return "S"
	case MoveDoubleDown:
		return "D"
	}
	return "?"
}

// Classify 依次检查爆牌、五小龙；都不满足则等待玩家动作
func Classify(h table.Hand) State {
	score := evaluator.Score(h.Cards)
	switch {
	case score > evaluator.BustLimit:
		return Busted
	case h.Len() == CharlieCards:
		return CharlieWin
	default:
		return AwaitingMove
	}
}

// Turn 玩家回合快照。所有转移都返回新值，不修改接收者。
type Turn struct {
	Hand    table.Hand
	Bet     int
	State   State
	Doubled bool
}

func NewTurn(h table.Hand, bet int) Turn {
	return Turn{Hand: h, Bet: bet, State: Classify(h)}
}

func (t Turn) Score() int {
	return evaluator.Score(t.Hand.Cards)
}

// CanDoubleDown 仅限两张牌且下注后仍有余额
func (t Turn) CanDoubleDown(bankroll int) bool {
	return t.State == AwaitingMove && !t.Doubled && t.Hand.Len() == 2 && bankroll-t.Bet > 0
}

// MaxExtra 加倍时可追加的最大金额
func (t Turn) MaxExtra(bankroll int) int {
	return min(t.Bet, bankroll-t.Bet)
}

// Moves 当前可选动作
func (t Turn) Moves(bankroll int) []Move {
	if t.State != AwaitingMove {
		return nil
	}
	moves := []Move{MoveHit, MoveStand}
	if t.CanDoubleDown(bankroll) {
		moves = append(moves, MoveDoubleDown)
	}
	return moves
}

func (t Turn) Hit(c table.Card) (Turn, error) {
	if t.State != AwaitingMove {
		return t, ErrTurnOver
	}
	t.Hand = t.Hand.Add(c)
	t.State = Classify(t.Hand)
	return t, nil
}

func (t Turn) Stand() (Turn, error) {
	if t.State != AwaitingMove {
		return t, ErrTurnOver
	}
	t.State = Stood
	return t, nil
}

// DoubleDown 追加下注并强制补一张牌；未爆牌也未五小龙则自动停牌
func (t Turn) DoubleDown(extra int, c table.Card, bankroll int) (Turn, error) {
	if t.State != AwaitingMove {
		return t, ErrTurnOver
	}
	if !t.CanDoubleDown(bankroll) {
		return t, ErrIllegalMove
	}
	if extra < 1 || extra > t.MaxExtra(bankroll) {
		return t, ErrInvalidBet
	}
	t.Bet += extra
	t.Doubled = true
	t.Hand = t.Hand.Add(c)
	if t.State = Classify(t.Hand); t.State == AwaitingMove {
		t.State = Stood
	}
	return t, nil
}
