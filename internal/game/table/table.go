package table

import (
	"fmt"
	"time"
)

// 花色 (suit 0-3)
const (
	Clubs = iota
	Diamonds
	Hearts
	Spades
)

// 点数 (rank 2-14)，J=11 Q=12 K=13 A=14
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card 定义 (suit 0-3, rank 2-14)
type Card struct {
	Suit int `json:"suit"`
	Rank int `json:"rank"`
}

func (c Card) String() string {
	return fmtCard(c)
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// RankString 返回点数字符 "2".."10", "J", "Q", "K", "A"
func (c Card) RankString() string {
	ranks := map[int]string{
		Jack:  "J",
		Queen: "Q",
		King:  "K",
		Ace:   "A",
	}
	rankStr, ok := ranks[c.Rank]
	if !ok {
		rankStr = fmt.Sprintf("%d", c.Rank)
	}
	return rankStr
}

// SuitSymbol 返回花色符号
func (c Card) SuitSymbol() string {
	suits := []string{"♣", "♦", "♥", "♠"}
	if c.Suit >= 0 && c.Suit < len(suits) {
		return suits[c.Suit]
	}
	return "?"
}

// IsRed 红桃/方块
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

func fmtCard(c Card) string {
	return c.RankString() + c.SuitSymbol()
}

// Hand 玩家或庄家手牌，只追加不减少
type Hand struct {
	Cards []Card `json:"cards"`
}

func NewHand(cards ...Card) Hand {
	h := Hand{Cards: make([]Card, 0, 5)}
	h.Cards = append(h.Cards, cards...)
	return h
}

// Add 返回追加后的新手牌，不修改原切片
func (h Hand) Add(c Card) Hand {
	cards := make([]Card, len(h.Cards), len(h.Cards)+1)
	copy(cards, h.Cards)
	return Hand{Cards: append(cards, c)}
}

func (h Hand) Len() int {
	return len(h.Cards)
}

func (h Hand) String() string {
	return fmt.Sprint(h.Cards)
}

// Table 单局状态
type Table struct {
	ID        string
	CreatedAt time.Time

	// 运行时状态
	Bet      int
	Bankroll int
	Player   Hand
	Dealer   Hand
	State    string
}
