package evaluator

import (
	"math/rand"
	"testing"

	"blackjack/internal/game/table"

	"github.com/stretchr/testify/assert"
)

func c(rank, suit int) table.Card {
	return table.Card{Suit: suit, Rank: rank}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		cards    []table.Card
		expected int
	}{
		{"empty", nil, 0},
		{"two aces", []table.Card{c(table.Ace, table.Hearts), c(table.Ace, table.Diamonds)}, 12},
		{"face cards", []table.Card{c(table.King, table.Spades), c(table.Queen, table.Diamonds)}, 20},
		{"blackjack", []table.Card{c(table.Ace, table.Clubs), c(table.King, table.Hearts)}, 21},
		{"ace as 1", []table.Card{c(table.Ace, table.Spades), c(9, table.Hearts), c(2, table.Diamonds)}, 12},
		{"multiple aces", []table.Card{c(table.Ace, table.Spades), c(table.Ace, table.Hearts), c(9, table.Diamonds)}, 21},
		{"four aces", []table.Card{c(table.Ace, 0), c(table.Ace, 1), c(table.Ace, 2), c(table.Ace, 3)}, 14},
		{"bust keeps aces low", []table.Card{c(table.Ace, table.Spades), c(table.King, table.Hearts), c(table.Queen, table.Clubs), c(5, table.Clubs)}, 26},
		{"numbers", []table.Card{c(10, table.Spades), c(7, table.Hearts)}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.cards))
		})
	}
}

// ✅ 打乱顺序不影响点数
func TestScorePermutationInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for n := 0; n < 200; n++ {
		size := 2 + rnd.Intn(5)
		cards := make([]table.Card, size)
		for i := range cards {
			cards[i] = c(2+rnd.Intn(13), rnd.Intn(4))
		}
		want := Score(cards)
		for k := 0; k < 10; k++ {
			rnd.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
			assert.Equal(t, want, Score(cards), "cards %v", cards)
		}
	}
}

func TestSoftAndBlackjack(t *testing.T) {
	soft17 := []table.Card{c(table.Ace, table.Hearts), c(6, table.Clubs)}
	hard17 := []table.Card{c(table.Ace, table.Hearts), c(6, table.Clubs), c(10, table.Spades)}

	assert.True(t, IsSoft(soft17))
	assert.False(t, IsSoft(hard17))
	assert.False(t, IsBlackjack(soft17))
	assert.True(t, IsBlackjack([]table.Card{c(table.Jack, table.Spades), c(table.Ace, table.Clubs)}))
	assert.False(t, IsBlackjack([]table.Card{c(7, table.Spades), c(7, table.Clubs), c(7, table.Hearts)}))
	assert.True(t, IsBust([]table.Card{c(10, 0), c(10, 1), c(2, 2)}))
	assert.False(t, IsBust([]table.Card{c(10, 0), c(table.Ace, 1), c(table.Queen, 2)}))
}
