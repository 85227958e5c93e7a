package engine

import (
	"fmt"

	"blackjack/internal/game/evaluator"
)

// Outcome 结算结果
type Outcome int

const (
	OutcomeLose Outcome = iota
	OutcomeBust
	OutcomeTie
	OutcomeWin
	OutcomeDealerBust
	OutcomeCharlie
)

var outcomeNames = map[Outcome]string{
	OutcomeLose:       "lose",
	OutcomeBust:       "bust",
	OutcomeTie:        "tie",
	OutcomeWin:        "win",
	OutcomeDealerBust: "dealer_bust",
	OutcomeCharlie:    "charlie",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	if _, ok := outcomeNames[o]; !ok {
		return nil, fmt.Errorf("unknown outcome %d", int(o))
	}
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	for k, v := range outcomeNames {
		if v == string(b) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", string(b))
}

func (o Outcome) IsWin() bool {
	return o == OutcomeWin || o == OutcomeDealerBust || o == OutcomeCharlie
}

func (o Outcome) IsLoss() bool {
	return o == OutcomeLose || o == OutcomeBust
}

// Settlement 一局的结算
type Settlement struct {
	Outcome     Outcome
	PlayerScore int
	DealerScore int
	Bet         int
	Delta       int
	Bankroll    int
}

// Message 每种结果只有一条文案
func (s Settlement) Message() string {
	switch s.Outcome {
	case OutcomeCharlie:
		return fmt.Sprintf("Five-card charlie! You won $%d!", s.Bet)
	case OutcomeDealerBust:
		return fmt.Sprintf("Dealer busts! You win $%d!", s.Bet)
	case OutcomeWin:
		return fmt.Sprintf("You won $%d!", s.Bet)
	case OutcomeTie:
		return "It's a tie, the bet is returned to you."
	case OutcomeBust:
		return "You busted! You lost!"
	default:
		return "You lost!"
	}
}

// Settle 纯函数：(终局状态, 双方点数, 下注, 余额) -> 新余额。
// 下注上限由输入层保证，这里不再校验。
func Settle(state State, playerScore, dealerScore, bet, bankroll int) Settlement {
	s := Settlement{PlayerScore: playerScore, DealerScore: dealerScore, Bet: bet}

	switch {
	case state == CharlieWin:
		s.Outcome = OutcomeCharlie
	case state == Busted || playerScore > evaluator.BustLimit:
		s.Outcome = OutcomeBust
	case dealerScore > evaluator.BustLimit:
		s.Outcome = OutcomeDealerBust
	case playerScore > dealerScore:
		s.Outcome = OutcomeWin
	case playerScore < dealerScore:
		s.Outcome = OutcomeLose
	default:
		s.Outcome = OutcomeTie
	}

	switch {
	case s.Outcome.IsWin():
		s.Delta = bet
	case s.Outcome.IsLoss():
		s.Delta = -bet
	}
	s.Bankroll = bankroll + s.Delta
	return s
}
