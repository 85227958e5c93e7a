package dealer

import (
	"errors"
	"math/rand"
	"time"

	"blackjack/internal/game/evaluator"
	"blackjack/internal/game/table"
)

// StandScore 庄家达到该点数即停牌
const StandScore = 17

// ErrEmptyDeck 牌堆已空。52 张牌足够任何合法对局，出现即为逻辑错误。
var ErrEmptyDeck = errors.New("dealer: deck is empty")

// Dealer 负责洗牌、发牌以及庄家补牌
type Dealer struct {
	deck  []table.Card
	fixed []table.Card
	rnd   *rand.Rand
}

// NewDealer seed 为 0 时使用当前时间
func NewDealer(seed int64) *Dealer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Dealer{
		deck: make([]table.Card, 0, 52),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// NewDealerWithDeck 按给定顺序发牌（回放/测试用），每次 NewDeck 都恢复该顺序
func NewDealerWithDeck(cards []table.Card) *Dealer {
	fixed := make([]table.Card, len(cards))
	copy(fixed, cards)
	d := &Dealer{fixed: fixed}
	d.NewDeck()
	return d
}

// NewDeck 初始化一副牌并洗牌
func (d *Dealer) NewDeck() {
	if d.fixed != nil {
		d.deck = append([]table.Card(nil), d.fixed...)
		return
	}
	d.deck = makeDeck()
	d.shuffle()
}

func makeDeck() []table.Card {
	deck := make([]table.Card, 0, 52)
	for s := table.Clubs; s <= table.Spades; s++ {
		for r := 2; r <= table.Ace; r++ {
			deck = append(deck, table.Card{Suit: s, Rank: r})
		}
	}
	return deck
}

func (d *Dealer) shuffle() {
	d.rnd.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

func (d *Dealer) Remaining() int {
	return len(d.deck)
}

// DealOne 从牌堆顶发一张
func (d *Dealer) DealOne() (table.Card, error) {
	if len(d.deck) == 0 {
		return table.Card{}, ErrEmptyDeck
	}
	c := d.deck[0]
	d.deck = d.deck[1:]
	return c, nil
}

// DealHands 轮流发牌：玩家、庄家、玩家、庄家
func (d *Dealer) DealHands() (player, dealer table.Hand, err error) {
	player, dealer = table.NewHand(), table.NewHand()
	for i := 0; i < 2; i++ {
		c, err := d.DealOne()
		if err != nil {
			return player, dealer, err
		}
		player = player.Add(c)

		if c, err = d.DealOne(); err != nil {
			return player, dealer, err
		}
		dealer = dealer.Add(c)
	}
	return player, dealer, nil
}

// ShouldHit 庄家规则：点数小于 17 必须补牌
func ShouldHit(h table.Hand) bool {
	return evaluator.Score(h.Cards) < StandScore
}

// PlayOut 庄家按规则补牌直到 >= 17（含爆牌），每补一张回调 onDraw
func (d *Dealer) PlayOut(h *table.Hand, onDraw func(table.Card)) error {
	for ShouldHit(*h) {
		c, err := d.DealOne()
		if err != nil {
			return err
		}
		*h = h.Add(c)
		if onDraw != nil {
			onDraw(c)
		}
	}
	return nil
}
