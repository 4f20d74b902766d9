package game

import "fmt"

type Suit int

const (
	Hearts   Suit = iota // 0
	Diamonds             // 1
	Clubs                // 2
	Spades               // 3
)

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Color returns the suit color: hearts and diamonds are red, clubs and spades black.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank is totally ordered, Two lowest and Ace highest.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return fmt.Sprintf("%d", int(r))
}

// Beats reports whether r is strictly higher than other.
func (r Rank) Beats(other Rank) bool {
	return r > other
}

type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Suits returns the two suits of a color.
func (c Color) Suits() []Suit {
	if c == Red {
		return []Suit{Hearts, Diamonds}
	}
	return []Suit{Clubs, Spades}
}

// Card is a single card. Cards are values: placing or revealing one produces a new value.
type Card struct {
	Suit     Suit
	Rank     Rank
	Owner    PlayerID
	FaceDown bool
}

func (c Card) Color() Color {
	return c.Suit.Color()
}

func (c Card) String() string {
	if c.FaceDown {
		return "##"
	}
	return c.Rank.String() + c.Suit.String()
}
