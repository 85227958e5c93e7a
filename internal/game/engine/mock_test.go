package engine

import (
	"blackjack/internal/game/table"
)

// scriptedInput 按脚本返回动作，并记录每次提供的合法动作
type scriptedInput struct {
	moves   []Move
	extras  []int
	offered [][]Move
	maxes   []int
	quitAt  int // 第 n 次 Move 调用返回 ErrQuit，0 表示不退出
	calls   int
}

func (s *scriptedInput) Bet(max int) (int, error) { return max, nil }

func (s *scriptedInput) Move(legal []Move) (Move, error) {
	s.calls++
	s.offered = append(s.offered, legal)
	if s.quitAt == s.calls {
		return 0, ErrQuit
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

func (s *scriptedInput) Extra(max int) (int, error) {
	s.maxes = append(s.maxes, max)
	x := s.extras[0]
	s.extras = s.extras[1:]
	return x, nil
}

func (s *scriptedInput) Pause() error { return nil }

// recordingDisplay 记录所有展示调用
type recordingDisplay struct {
	drawn      []table.Card
	dealerHits []table.Card
	increased  []int
	outcomes   []Settlement
	revealed   int
	concealed  int
}

func (d *recordingDisplay) Hands(player, dealer table.Hand, reveal bool) {
	if reveal {
		d.revealed++
	} else {
		d.concealed++
	}
}
func (d *recordingDisplay) Drew(c table.Card)       { d.drawn = append(d.drawn, c) }
func (d *recordingDisplay) DealerHits(c table.Card) { d.dealerHits = append(d.dealerHits, c) }
func (d *recordingDisplay) BetIncreased(total int)  { d.increased = append(d.increased, total) }
func (d *recordingDisplay) Outcome(s Settlement)    { d.outcomes = append(d.outcomes, s) }

func card(rank, suit int) table.Card {
	return table.Card{Suit: suit, Rank: rank}
}
