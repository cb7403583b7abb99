// Package pinochle implements the card model of the game of Pinochle.
//
// # Core Types
//
// Card: One physical card, identified by suit and rank. A pinochle deck holds
// two copies of every card, so two Card values may be equal.
//
// Suit, Rank: The four suits and the six ranks 9, J, Q, K, 10, A, numbered 1..6
// in trick-taking order.
//
// Hand: The multiset of cards held by a player. A hand never holds more than
// MaxCopies copies of the same card; Snapshot hands out an independent copy of
// the cards for evaluation.
//
// # Card Notation
//
// ParseCard and ParseCards accept the short notation rank+suit, with the suit
// written as a letter or a glyph: "JD", "10h", "Q♠".
package pinochle
