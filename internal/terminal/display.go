package terminal

import (
	"fmt"
	"io"
	"strings"

	"blackjack/internal/game/engine"
	"blackjack/internal/game/evaluator"
	"blackjack/internal/game/table"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const rules = `Rules:
    Try to get as close to 21 without going over.
    Kings, Queens, and Jacks are worth 10 points.
    Aces are worth 1 or 11 points.
    Cards 2 through 10 are worth their face value.
    (H)it to take another card.
    (S)tand to stop taking cards.
    On your first play, you can (D)ouble down to increase your bet
    but must hit exactly one more time before standing.
    Five cards without going over 21 win automatically.
    In case of a tie, the bet is returned to the player.
    The dealer stops hitting at 17.`

// Face 展示用的牌面：明牌或暗牌。暗牌只存在于展示层。
type Face struct {
	Card   table.Card
	Hidden bool
}

// Faces conceal 为 true 时第一张牌为暗牌
func Faces(h table.Hand, conceal bool) []Face {
	out := make([]Face, len(h.Cards))
	for i, c := range h.Cards {
		out[i] = Face{Card: c, Hidden: conceal && i == 0}
	}
	return out
}

// Console 把对局渲染到终端
type Console struct {
	out io.Writer

	card   lipgloss.Style
	red    lipgloss.Style
	back   lipgloss.Style
	win    lipgloss.Style
	lose   lipgloss.Style
	header lipgloss.Style
}

func NewConsole(w io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	card := r.NewStyle().Border(lipgloss.RoundedBorder())
	return &Console{
		out:    w,
		card:   card,
		red:    card.Foreground(lipgloss.Color("#FF4040")).BorderForeground(lipgloss.Color("#FF4040")),
		back:   card.Foreground(lipgloss.Color("#4060FF")),
		win:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00C000")),
		lose:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4040")),
		header: r.NewStyle().Bold(true),
	}
}

func (c *Console) Rules() {
	fmt.Fprintln(c.out, rules)
	fmt.Fprintln(c.out)
}

func (c *Console) Money(bankroll int) {
	fmt.Fprintf(c.out, "Money: %d\n", bankroll)
}

// Hands reveal 为 false 时隐藏庄家首张牌与点数
func (c *Console) Hands(player, dealer table.Hand, reveal bool) {
	fmt.Fprintln(c.out)
	if reveal {
		fmt.Fprintln(c.out, c.header.Render(fmt.Sprintf("DEALER: %d", evaluator.Score(dealer.Cards))))
	} else {
		fmt.Fprintln(c.out, c.header.Render("DEALER: ???"))
	}
	fmt.Fprintln(c.out, c.RenderFaces(Faces(dealer, !reveal)))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.header.Render(fmt.Sprintf("PLAYER: %d", evaluator.Score(player.Cards))))
	fmt.Fprintln(c.out, c.RenderFaces(Faces(player, false)))
}

// RenderFaces 把多张牌横向拼接
func (c *Console) RenderFaces(faces []Face) string {
	blocks := make([]string, 0, len(faces))
	for _, f := range faces {
		blocks = append(blocks, c.renderFace(f))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (c *Console) renderFace(f Face) string {
	if f.Hidden {
		return c.back.Render(strings.Join([]string{"## ", "###", " ##"}, "\n"))
	}
	rank, suit := f.Card.RankString(), f.Card.SuitSymbol()
	body := strings.Join([]string{
		fmt.Sprintf("%-3s", rank),
		fmt.Sprintf(" %s ", suit),
		fmt.Sprintf("%3s", rank),
	}, "\n")
	if f.Card.IsRed() {
		return c.red.Render(body)
	}
	return c.card.Render(body)
}

func (c *Console) Drew(card table.Card) {
	fmt.Fprintf(c.out, "You drew a %s of %s.\n", card.RankString(), card.SuitSymbol())
}

func (c *Console) DealerHits(table.Card) {
	fmt.Fprintln(c.out, "Dealer hits...")
}

func (c *Console) BetIncreased(total int) {
	fmt.Fprintf(c.out, "Bet increased to %d.\n", total)
}

func (c *Console) Outcome(s engine.Settlement) {
	style := c.header
	switch {
	case s.Outcome.IsWin():
		style = c.win
	case s.Outcome.IsLoss():
		style = c.lose
	}
	fmt.Fprintln(c.out, style.Render(s.Message()))
}

func (c *Console) Broke() {
	fmt.Fprintln(c.out, "You're broke!")
	fmt.Fprintln(c.out, "Good thing you weren't playing with real money.")
}

func (c *Console) Farewell() {
	fmt.Fprintln(c.out, "Thanks for playing!")
}
