package manager

import (
	"context"
	"errors"
	"fmt"

	"blackjack/internal/game/engine"
	"blackjack/internal/history"

	"github.com/charmbracelet/log"
)

// Screen 会话层需要的全部展示能力
type Screen interface {
	engine.Display
	Rules()
	Money(bankroll int)
	Broke()
	Farewell()
}

// Session 管理一次游戏会话：收注、逐局对战、破产或退出即结束
type Session struct {
	engine   *engine.Engine
	input    engine.Input
	screen   Screen
	history  *history.Service
	bankroll int
	log      *log.Logger
}

func NewSession(eng *engine.Engine, in engine.Input, screen Screen, hist *history.Service, bankroll int, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		engine:   eng,
		input:    in,
		screen:   screen,
		history:  hist,
		bankroll: bankroll,
		log:      logger,
	}
}

func (s *Session) Bankroll() int {
	return s.bankroll
}

// Run 破产或玩家退出时返回 nil；其他错误（如牌堆耗尽）原样返回
func (s *Session) Run(ctx context.Context) error {
	s.screen.Rules()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.bankroll <= 0 {
			s.screen.Broke()
			s.finish(ctx, "broke")
			return nil
		}

		s.screen.Money(s.bankroll)
		bet, err := s.input.Bet(s.bankroll)
		if err != nil {
			return s.stop(ctx, err)
		}

		tbl, st, err := s.engine.PlayRound(s.bankroll, bet)
		if err != nil {
			return s.stop(ctx, err)
		}
		s.bankroll = st.Bankroll

		if s.history != nil {
			if err := s.history.Record(ctx, tbl, st); err != nil {
				s.log.Warn("record round failed", "round", tbl.ID, "err", err)
			}
		}

		if err := s.input.Pause(); err != nil {
			return s.stop(ctx, err)
		}
	}
}

// stop 退出信号正常结束，其余错误向上返回
func (s *Session) stop(ctx context.Context, err error) error {
	if errors.Is(err, engine.ErrQuit) {
		s.finish(ctx, "quit")
		return nil
	}
	return fmt.Errorf("session: %w", err)
}

func (s *Session) finish(ctx context.Context, reason string) {
	if s.history != nil {
		sum, err := s.history.Summary(ctx)
		if err != nil {
			s.log.Warn("session summary failed", "err", err)
		} else {
			s.log.Info("session over",
				"reason", reason, "rounds", sum.Rounds, "wins", sum.Wins,
				"losses", sum.Losses, "ties", sum.Ties, "net", sum.Net, "bankroll", s.bankroll)
		}
	}
	s.screen.Farewell()
}
