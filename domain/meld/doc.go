// Package meld computes the meld of a pinochle hand.
//
// # Catalog
//
// The meld table is a static list of Category descriptors: aces, kings,
// queens and jacks around, marriages, runs and pinochle, each in a single and
// a double form. Point values live apart from the table in Rules, so rule
// variants only swap the numbers.
//
// # Evaluation
//
// Evaluator.Evaluate tallies the hand once and matches every category
// instance against it. Complete instances are scored; incomplete ones report
// the cards already held and a completion fraction. Single and double forms
// share an exclusivity group, and only the most valuable complete member of a
// group scores: a double run of Spades leaves the run of Spades at zero.
// Different families may share cards, so a king can count both in kings
// around and in a marriage.
//
// Evaluation is a pure function of the cards. It never modifies the input
// and returns the same Result for the same cards.
package meld
