package game

import "math/rand"

const (
	HandSize = 3
	DeckSize = 26 // two suits of thirteen ranks
)

// CreateDeck returns the 26 face-up cards of a color, tagged with their owner.
func CreateDeck(color Color, owner PlayerID) []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range color.Suits() {
		for _, rank := range Ranks {
			deck = append(deck, Card{Suit: suit, Rank: rank, Owner: owner})
		}
	}
	return deck
}

// Shuffle permutes the deck in place (Fisher-Yates). It is deliberately unseeded.
func Shuffle(deck []Card) {
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// InitializePlayer shuffles a fresh deck of the player's color and deals the opening hand.
func InitializePlayer(id PlayerID) Player {
	deck := CreateDeck(id.Color(), id)
	Shuffle(deck)

	p := Player{ID: id}
	for i := 0; i < HandSize; i++ {
		card := deck[i]
		p.Hand[i] = &card
	}
	p.Deck = deck[HandSize:]
	return p
}

// Player holds a hand of fixed slots (nil = empty), the remaining deck (drawn from the end)
// and the face-down discard pile.
type Player struct {
	ID      PlayerID
	Hand    [HandSize]*Card
	Deck    []Card
	Discard []Card
}

func (p Player) copy() Player {
	// Hand slots point at card values that are never written through
	return Player{
		ID:      p.ID,
		Hand:    p.Hand,
		Deck:    append([]Card(nil), p.Deck...),
		Discard: append([]Card(nil), p.Discard...),
	}
}

// HandCount returns the number of filled hand slots.
func (p Player) HandCount() int {
	n := 0
	for _, c := range p.Hand {
		if c != nil {
			n++
		}
	}
	return n
}

// Exhausted reports whether the player has no card left in hand or deck.
func (p Player) Exhausted() bool {
	return p.HandCount() == 0 && len(p.Deck) == 0
}

// draw refills a hand slot from the end of the deck, leaving it empty if the deck is exhausted.
func (p *Player) draw(slot int) {
	if len(p.Deck) == 0 {
		p.Hand[slot] = nil
		return
	}
	card := p.Deck[len(p.Deck)-1]
	p.Deck = p.Deck[:len(p.Deck)-1]
	p.Hand[slot] = &card
}
