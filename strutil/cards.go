package strutil

import (
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Deck order: suits ♣ ♦ ♥ ♠, values A 2..10 J Q K inside each suit.
var (
	cardSuits  = []rune{'♣', '♦', '♥', '♠'}
	cardValues = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// CardID returns the zero-based position of a card such as "A♣" or "10♥"
// inside the fixed 52-card deck, or -1 if the card doesn't exist.
func CardID(card string) int {
	suit, size := utf8.DecodeLastRuneInString(card)
	if suit == utf8.RuneError {
		return -1
	}

	s := slices.Index(cardSuits, suit)
	v := slices.Index(cardValues, card[:len(card)-size])
	if s < 0 || v < 0 {
		return -1
	}

	return s*len(cardValues) + v
}
