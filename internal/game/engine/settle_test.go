package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		player   int
		dealer   int
		outcome  Outcome
		bankroll int
	}{
		{"player higher", Stood, 20, 18, OutcomeWin, 1100},
		{"player lower", Stood, 18, 20, OutcomeLose, 900},
		{"tie", Stood, 19, 19, OutcomeTie, 1000},
		{"dealer busts", Stood, 12, 24, OutcomeDealerBust, 1100},
		{"player busts", Busted, 25, 18, OutcomeBust, 900},
		{"both bust", Busted, 25, 24, OutcomeBust, 900},
		{"charlie beats 21", CharlieWin, 18, 21, OutcomeCharlie, 1100},
		{"charlie vs dealer bust", CharlieWin, 20, 26, OutcomeCharlie, 1100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settle(tt.state, tt.player, tt.dealer, 100, 1000)
			assert.Equal(t, tt.outcome, s.Outcome)
			assert.Equal(t, tt.bankroll, s.Bankroll)
			assert.Equal(t, tt.bankroll-1000, s.Delta)
		})
	}
}

func TestSettlementMessage(t *testing.T) {
	assert.Equal(t, "You won $100!", Settle(Stood, 20, 18, 100, 1000).Message())
	assert.Equal(t, "Dealer busts! You win $100!", Settle(Stood, 20, 22, 100, 1000).Message())
	assert.Equal(t, "You lost!", Settle(Stood, 17, 18, 100, 1000).Message())
	assert.Equal(t, "It's a tie, the bet is returned to you.", Settle(Stood, 18, 18, 100, 1000).Message())
	assert.Contains(t, Settle(CharlieWin, 18, 18, 100, 1000).Message(), "charlie")
}

func TestOutcomeText(t *testing.T) {
	b, err := json.Marshal(struct {
		O Outcome `json:"o"`
	}{OutcomeDealerBust})
	require.NoError(t, err)
	assert.JSONEq(t, `{"o":"dealer_bust"}`, string(b))

	var o Outcome
	require.NoError(t, o.UnmarshalText([]byte("charlie")))
	assert.Equal(t, OutcomeCharlie, o)
	assert.Error(t, o.UnmarshalText([]byte("jackpot")))
}
