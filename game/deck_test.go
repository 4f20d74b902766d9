package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateDeck(t *testing.T) {
	for _, id := range []PlayerID{Player1, Player2} {
		t.Run(id.String(), func(t *testing.T) {
			deck := CreateDeck(id.Color(), id)
			require.Len(t, deck, DeckSize)

			seen := map[Card]bool{}
			for _, c := range deck {
				require.Equal(t, id, c.Owner)
				require.Equal(t, id.Color(), c.Color())
				require.False(t, c.FaceDown)
				require.False(t, seen[c], "duplicate card %s", c)
				seen[c] = true
			}
		})
	}
}

func TestRankOrder(t *testing.T) {
	require.Len(t, Ranks, 13)
	for i := 1; i < len(Ranks); i++ {
		require.True(t, Ranks[i].Beats(Ranks[i-1]), "%s should beat %s", Ranks[i], Ranks[i-1])
		require.False(t, Ranks[i-1].Beats(Ranks[i]))
		require.False(t, Ranks[i].Beats(Ranks[i]))
	}
	require.Equal(t, Ace, Ranks[len(Ranks)-1])
}

func TestShuffle(t *testing.T) {
	t.Run("keeps the same cards", func(t *testing.T) {
		deck := CreateDeck(Red, Player1)
		shuffled := CreateDeck(Red, Player1)
		Shuffle(shuffled)
		require.ElementsMatch(t, deck, shuffled)
	})

	t.Run("is not reproducible", func(t *testing.T) {
		a := CreateDeck(Black, Player2)
		b := CreateDeck(Black, Player2)
		Shuffle(a)
		Shuffle(b)
		require.NotEqual(t, a, b, "two shuffles of 26 cards should differ")
	})
}

func TestInitializePlayer(t *testing.T) {
	p := InitializePlayer(Player2)

	require.Equal(t, Player2, p.ID)
	require.Equal(t, HandSize, p.HandCount())
	require.Len(t, p.Deck, DeckSize-HandSize)
	require.Empty(t, p.Discard)

	all := append([]Card{}, p.Deck...)
	for _, c := range p.Hand {
		all = append(all, *c)
	}
	sorted := func(cards []Card) []Card {
		sort.Slice(cards, func(i, j int) bool {
			if cards[i].Suit != cards[j].Suit {
				return cards[i].Suit < cards[j].Suit
			}
			return cards[i].Rank < cards[j].Rank
		})
		return cards
	}
	require.Equal(t, sorted(CreateDeck(Black, Player2)), sorted(all))
}

func TestDraw(t *testing.T) {
	p := newTestPlayer(Player1, []Card{red(Two)}, []Card{red(Five), red(Nine)})

	p.draw(0)
	require.Equal(t, red(Nine), *p.Hand[0], "draws from the end of the deck")
	require.Len(t, p.Deck, 1)

	p.Deck = nil
	p.draw(0)
	require.Nil(t, p.Hand[0])
	require.True(t, p.Exhausted())
}
