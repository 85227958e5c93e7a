package engine

import "errors"

var (
	// ErrQuit 玩家主动退出，不是异常
	ErrQuit        = errors.New("player quit")
	ErrTurnOver    = errors.New("turn already finished")
	ErrIllegalMove = errors.New("move not allowed")
	ErrInvalidBet  = errors.New("bet out of range")
)
