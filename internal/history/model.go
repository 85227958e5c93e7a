package history

import (
	"time"

	"blackjack/internal/game/engine"
)

// Round 一局的结算记录
type Round struct {
	ID          string         `json:"id"`
	SessionID   string         `json:"sessionId"`
	Bet         int            `json:"bet"`
	PlayerScore int            `json:"playerScore"`
	DealerScore int            `json:"dealerScore"`
	Outcome     engine.Outcome `json:"outcome"`
	Delta       int            `json:"delta"`
	Bankroll    int            `json:"bankroll"`
	PlayedAt    time.Time      `json:"playedAt"`
}

// Summary 本次会话统计
type Summary struct {
	Rounds int `json:"rounds"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
	Net    int `json:"net"`
}
