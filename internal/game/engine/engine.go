package engine

import (
	"fmt"
	"time"

	"blackjack/internal/game/dealer"
	"blackjack/internal/game/evaluator"
	"blackjack/internal/game/table"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ---------------------
//     COLLABORATORS
// ---------------------

// Input 同步输入源。非法输入由实现方自行重新询问；退出返回 ErrQuit。
type Input interface {
	Bet(max int) (int, error)
	Move(legal []Move) (Move, error)
	Extra(max int) (int, error)
	Pause() error
}

// Display 只负责展示
type Display interface {
	Hands(player, dealer table.Hand, reveal bool)
	Drew(c table.Card)
	DealerHits(c table.Card)
	BetIncreased(total int)
	Outcome(s Settlement)
}

// ---------------------
//       ENGINE
// ---------------------

type Engine struct {
	Dealer  *dealer.Dealer
	input   Input
	display Display
	log     *log.Logger
}

func NewEngine(d *dealer.Dealer, in Input, out Display, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		Dealer:  d,
		input:   in,
		display: out,
		log:     logger,
	}
}

// PlayRound 洗牌、发牌、玩家回合、庄家补牌、结算。
// bet 必须已在 [1, bankroll] 内。
func (e *Engine) PlayRound(bankroll, bet int) (*table.Table, Settlement, error) {
	e.Dealer.NewDeck()

	player, dealerHand, err := e.Dealer.DealHands()
	if err != nil {
		return nil, Settlement{}, fmt.Errorf("deal hands: %w", err)
	}
	t := &table.Table{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Bet:       bet,
		Bankroll:  bankroll,
		Player:    player,
		Dealer:    dealerHand,
	}
	logger := e.log.With("round", t.ID)
	logger.Debug("hands dealt", "player", player, "dealer", dealerHand, "bet", bet)

	turn, err := e.playerTurn(t, bankroll, logger)
	if err != nil {
		return t, Settlement{}, err
	}
	t.Player, t.Bet, t.State = turn.Hand, turn.Bet, turn.State.String()

	// 庄家无条件补牌，爆牌/五小龙由结算短路
	err = e.Dealer.PlayOut(&t.Dealer, func(c table.Card) {
		logger.Debug("dealer hits", "card", c)
		e.display.DealerHits(c)
		e.display.Hands(t.Player, t.Dealer, false)
	})
	if err != nil {
		return t, Settlement{}, fmt.Errorf("dealer play: %w", err)
	}
	e.display.Hands(t.Player, t.Dealer, true)

	s := Settle(turn.State, turn.Score(), evaluator.Score(t.Dealer.Cards), turn.Bet, bankroll)
	t.Bankroll = s.Bankroll
	logger.Info("round settled",
		"outcome", s.Outcome, "player", s.PlayerScore, "dealer", s.DealerScore,
		"bet", s.Bet, "bankroll", s.Bankroll)
	e.display.Outcome(s)
	return t, s, nil
}

// playerTurn 驱动状态机直到终局
func (e *Engine) playerTurn(t *table.Table, bankroll int, logger *log.Logger) (Turn, error) {
	turn := NewTurn(t.Player, t.Bet)
	for turn.State == AwaitingMove {
		e.display.Hands(turn.Hand, t.Dealer, false)

		move, err := e.input.Move(turn.Moves(bankroll))
		if err != nil {
			return turn, err
		}
		logger.Debug("player move", "move", move, "score", turn.Score())

		switch move {
		case MoveStand:
			turn, err = turn.Stand()

		case MoveHit:
			var c table.Card
			if c, err = e.deal(); err != nil {
				return turn, err
			}
			e.display.Drew(c)
			turn, err = turn.Hit(c)

		case MoveDoubleDown:
			if !turn.CanDoubleDown(bankroll) {
				return turn, fmt.Errorf("%w: %s", ErrIllegalMove, move)
			}
			var extra int
			if extra, err = e.input.Extra(turn.MaxExtra(bankroll)); err != nil {
				return turn, err
			}
			e.display.BetIncreased(turn.Bet + extra)
			var c table.Card
			if c, err = e.deal(); err != nil {
				return turn, err
			}
			e.display.Drew(c)
			turn, err = turn.DoubleDown(extra, c, bankroll)

		default:
			return turn, fmt.Errorf("%w: %s", ErrIllegalMove, move)
		}
		if err != nil {
			return turn, err
		}
	}
	logger.Debug("player turn over", "state", turn.State, "score", turn.Score(), "bet", turn.Bet)
	return turn, nil
}

func (e *Engine) deal() (table.Card, error) {
	c, err := e.Dealer.DealOne()
	if err != nil {
		return c, fmt.Errorf("player draw: %w", err)
	}
	return c, nil
}
