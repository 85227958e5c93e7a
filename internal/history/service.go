package history

import (
	"context"
	"time"

	"blackjack/internal/game/engine"
	"blackjack/internal/game/table"

	"github.com/charmbracelet/log"
)

type Service struct {
	repo      Repo
	sessionID string
	ttl       int // seconds
	log       *log.Logger
}

func NewService(repo Repo, sessionID string, ttl int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{repo: repo, sessionID: sessionID, ttl: ttl, log: logger}
}

func (s *Service) SessionID() string {
	return s.sessionID
}

// Record 保存一局结算
func (s *Service) Record(ctx context.Context, t *table.Table, st engine.Settlement) error {
	r := Round{
		ID:          t.ID,
		SessionID:   s.sessionID,
		Bet:         st.Bet,
		PlayerScore: st.PlayerScore,
		DealerScore: st.DealerScore,
		Outcome:     st.Outcome,
		Delta:       st.Delta,
		Bankroll:    st.Bankroll,
		PlayedAt:    t.CreatedAt,
	}
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now()
	}
	if err := s.repo.Append(ctx, s.sessionID, r, s.ttl); err != nil {
		return err
	}
	s.log.Debug("round recorded", "session", s.sessionID, "round", r.ID, "outcome", r.Outcome)
	return nil
}

// Summary 汇总本会话所有记录
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	rounds, err := s.repo.List(ctx, s.sessionID)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, r := range rounds {
		sum.Rounds++
		sum.Net += r.Delta
		switch {
		case r.Outcome.IsWin():
			sum.Wins++
		case r.Outcome.IsLoss():
			sum.Losses++
		default:
			sum.Ties++
		}
	}
	return sum, nil
}
