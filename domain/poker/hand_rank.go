package poker

import (
	"slices"
	"strings"
)

// Category is the classification tier of a hand. Higher categories beat
// lower ones regardless of kickers.
type Category uint8

// Categories from weakest to strongest.
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	}
	return "Unknown"
}

// HandRank is the result of evaluating a hand: its category and the ranks
// used to break ties within that category, strongest first.
type HandRank struct {
	Category Category
	Kickers  []Rank
}

func (r HandRank) String() string {
	ks := make([]string, len(r.Kickers))
	for i, k := range r.Kickers {
		ks[i] = k.String()
	}
	return r.Category.String() + " [" + strings.Join(ks, " ") + "]"
}

// detector recognises one category. detect returns the kickers for the
// category and whether the hand belongs to it.
type detector struct {
	category Category
	detect   func(Hand) ([]Rank, bool)
}

// detectors is evaluated top to bottom, strongest category first. Only the
// high card rule is in play; the other entries have no detect function and
// are skipped.
var detectors = [...]detector{
	{category: StraightFlush},
	{category: FourOfAKind},
	{category: FullHouse},
	{category: Flush},
	{category: Straight},
	{category: ThreeOfAKind},
	{category: TwoPair},
	{category: OnePair},
	{category: HighCard, detect: highCard},
}

// Evaluate ranks h. It never fails for a valid hand.
func Evaluate(h Hand) HandRank {
	for _, d := range detectors {
		if d.detect == nil {
			continue
		}
		if kickers, ok := d.detect(h); ok {
			return HandRank{Category: d.category, Kickers: kickers}
		}
	}
	panic("poker: no category matched hand " + h.String())
}

// Rank evaluates the hand. See Evaluate.
func (h Hand) Rank() HandRank {
	return Evaluate(h)
}

// highCard matches every hand: the kickers are all five ranks, strongest first.
func highCard(h Hand) ([]Rank, bool) {
	return ranksDescending(h), true
}

func ranksDescending(h Hand) []Rank {
	ranks := make([]Rank, HandSize)
	for i, c := range h.cards {
		ranks[i] = c.rank
	}
	slices.SortStableFunc(ranks, func(a, b Rank) int {
		return b.Strength() - a.Strength()
	})
	return ranks
}
