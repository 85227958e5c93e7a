package history

import "context"

// Repo 定义对局记录的存储抽象
type Repo interface {
	// Append 追加一局记录到会话
	Append(ctx context.Context, sessionID string, r Round, ttlSeconds int) error
	// List 按时间顺序返回会话内所有记录
	List(ctx context.Context, sessionID string) ([]Round, error)
	// Count 返回会话内局数
	Count(ctx context.Context, sessionID string) (int64, error)
}
