// Package evaluator 计算二十一点手牌点数。
package evaluator

import "blackjack/internal/game/table"

// BustLimit 超过即爆牌
const BustLimit = 21

// CardValue 返回单张牌的基础点数：J/Q/K 为 10，A 先按 1 计
func CardValue(c table.Card) int {
	switch {
	case c.Rank == table.Ace:
		return 1
	case c.Rank >= 10:
		return 10
	default:
		return c.Rank
	}
}

// Score 返回不爆牌前提下的最大点数；无法避免爆牌时返回 A 全按 1 计的总和。
// 结果与牌序无关。
func Score(cards []table.Card) int {
	total, _ := score(cards)
	return total
}

func score(cards []table.Card) (total int, promoted int) {
	aces := 0
	for _, c := range cards {
		total += CardValue(c)
		if c.IsAce() {
			aces++
		}
	}
	for i := 0; i < aces; i++ {
		if total+10 <= BustLimit {
			total += 10
			promoted++
		}
	}
	return total, promoted
}

func IsBust(cards []table.Card) bool {
	return Score(cards) > BustLimit
}

// IsSoft 是否有 A 当前按 11 计
func IsSoft(cards []table.Card) bool {
	_, promoted := score(cards)
	return promoted > 0
}

// IsBlackjack 两张牌 21 点（只用于展示，赔率与普通胜利相同）
func IsBlackjack(cards []table.Card) bool {
	return len(cards) == 2 && Score(cards) == BustLimit
}
