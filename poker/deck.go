package poker

// DeckSize is the number of cards in a standard deck.
const DeckSize = NumRanks * len(Suits)

// Deck is the 52 distinct cards in a fixed order: clubs, diamonds, hearts,
// spades, each from deuce to ace.
type Deck [DeckSize]Card

// NewDeck returns every card in deck order.
func NewDeck() Deck {
	var d Deck
	i := 0
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d[i] = encode(rank, suit)
			i++
		}
	}
	return d
}

// Index returns the position of c in deck order, or -1 if c is not a valid card.
func (d *Deck) Index(c Card) int {
	for i, card := range d {
		if card == c {
			return i
		}
	}
	return -1
}
