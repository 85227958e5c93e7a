package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blackjack/internal/game/engine"
)

const quitToken = "QUIT"

// Prompter 从终端读取下注与动作。非法输入重新询问；输入结束视为退出。
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// readLine 返回去空格、转大写后的输入
func (p *Prompter) readLine() (string, error) {
	fmt.Fprint(p.out, "> ")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", engine.ErrQuit
	}
	return strings.ToUpper(strings.TrimSpace(p.in.Text())), nil
}

// Bet 询问本局下注，范围 1..max
func (p *Prompter) Bet(max int) (int, error) {
	return p.amount("How much do you bet? (1-%d, or QUIT)", max)
}

// Extra 加倍时追加的下注，范围 1..max
func (p *Prompter) Extra(max int) (int, error) {
	return p.amount("How much more do you bet? (1-%d, or QUIT)", max)
}

func (p *Prompter) amount(prompt string, max int) (int, error) {
	for {
		fmt.Fprintf(p.out, prompt+"\n", max)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == quitToken {
			return 0, engine.ErrQuit
		}
		if n, ok := parseAmount(line, max); ok {
			return n, nil
		}
	}
}

// parseAmount 只接受纯数字
func parseAmount(s string, max int) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}

// Move 只返回 legal 中的动作
func (p *Prompter) Move(legal []engine.Move) (engine.Move, error) {
	labels := map[engine.Move]string{
		engine.MoveHit:        "(H)it",
		engine.MoveStand:      "(S)tand",
		engine.MoveDoubleDown: "(D)ouble down",
	}
	opts := make([]string, 0, len(legal))
	for _, m := range legal {
		opts = append(opts, labels[m])
	}
	for {
		fmt.Fprintln(p.out, strings.Join(opts, ", "))
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == quitToken {
			return 0, engine.ErrQuit
		}
		for _, m := range legal {
			if line == m.Key() || line == strings.ToUpper(m.String()) {
				return m, nil
			}
		}
	}
}

// Pause 等待回车
func (p *Prompter) Pause() error {
	fmt.Fprintln(p.out, "Press Enter to continue...")
	line, err := p.readLine()
	if err != nil {
		return err
	}
	if line == quitToken {
		return engine.ErrQuit
	}
	return nil
}
