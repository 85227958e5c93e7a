package history

import (
	"context"
	"sync"
)

type memRepo struct {
	mu     sync.Mutex
	rounds map[string][]Round // sessionID -> rounds
}

func NewMemoryRepo() Repo {
	return &memRepo{
		rounds: make(map[string][]Round),
	}
}

func (m *memRepo) Append(ctx context.Context, sessionID string, r Round, ttlSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// 简单忽略 TTL，进程退出即丢弃
	m.rounds[sessionID] = append(m.rounds[sessionID], r)
	return nil
}

func (m *memRepo) List(ctx context.Context, sessionID string) ([]Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Round, len(m.rounds[sessionID]))
	copy(out, m.rounds[sessionID])
	return out, nil
}

func (m *memRepo) Count(ctx context.Context, sessionID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rounds[sessionID])), nil
}
