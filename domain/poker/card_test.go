package poker

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input    string
		wantRank Rank
		wantSuit Suit
	}{
		{"AH", Ace, Hearts},
		{"KD", King, Diamonds},
		{"QS", Queen, Spades},
		{"JC", Jack, Clubs},
		{"TD", Ten, Diamonds},
		{"9S", Nine, Spades},
		{"2C", Two, Clubs},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseCard(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if c.Rank() != tt.wantRank || c.Suit() != tt.wantSuit {
				t.Fatalf("ParseCard(%q) = %v/%v, want %v/%v", tt.input, c.Rank(), c.Suit(), tt.wantRank, tt.wantSuit)
			}
		})
	}
}

func TestParseCardErrors(t *testing.T) {
	tests := []struct {
		input   string
		kind    error
		message string
	}{
		{"", ErrMalformedCard, "expected 2 characters"},
		{"A", ErrMalformedCard, "expected 2 characters"},
		{"AHS", ErrMalformedCard, "expected 2 characters"},
		{"1H", ErrInvalidSymbol, "invalid rank symbol"},
		{"XH", ErrInvalidSymbol, "invalid rank symbol"},
		{"BH", ErrInvalidSymbol, "invalid rank symbol"},
		{"ah", ErrInvalidSymbol, "invalid rank symbol"},
		{"AX", ErrInvalidSymbol, "invalid suit symbol"},
		{"AZ", ErrInvalidSymbol, "invalid suit symbol"},
		{"Ah", ErrInvalidSymbol, "invalid suit symbol"},
		{"??", ErrInvalidSymbol, "invalid rank symbol"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseCard(tt.input)
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("expected message containing %q, got %q", tt.message, err.Error())
			}
			if !strings.Contains(err.Error(), tt.input) {
				t.Fatalf("expected message naming token %q, got %q", tt.input, err.Error())
			}
		})
	}
}

func TestCardRoundTrip(t *testing.T) {
	for _, r := range Ranks {
		for _, s := range Suits {
			c, err := NewCard(r, s)
			if err != nil {
				t.Fatal(err)
			}
			got, err := ParseCard(c.String())
			if err != nil {
				t.Fatal(err)
			}
			if got != c {
				t.Fatalf("round trip of %v gave %v", c, got)
			}
		}
	}
}

func TestNewCardInvalid(t *testing.T) {
	if _, err := NewCard(0, Hearts); err == nil {
		t.Fatal("expected error for rank 0")
	}
	if _, err := NewCard(Ace+1, Hearts); err == nil {
		t.Fatal("expected error for rank above ace")
	}
	if _, err := NewCard(Ace, Spades+1); err == nil {
		t.Fatal("expected error for unknown suit")
	}
}

func TestCardEqualityAsMapKey(t *testing.T) {
	a, _ := ParseCard("AH")
	b, _ := NewCard(Ace, Hearts)
	set := map[Card]bool{a: true}
	if !set[b] {
		t.Fatalf("expected %v and %v to be the same key", a, b)
	}
}

func TestCardPretty(t *testing.T) {
	c, _ := NewCard(Jack, Clubs)
	if !strings.Contains(c.Pretty(), "J") || !strings.Contains(c.Pretty(), "♣") {
		t.Fatalf("expected J♣, got %s", c.Pretty())
	}
}
