package deck

import (
	"crypto/cipher"
	"math/big"

	"github.com/luca-patrignani/pinochle/domain/pinochle"
	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// RandomStream returns a cryptographically secure source of randomness.
func RandomStream() cipher.Stream {
	return suite.RandomStream()
}

// SeededStream returns a deterministic stream derived from seed, so that a
// deal can be replayed.
func SeededStream(seed []byte) cipher.Stream {
	return suite.XOF(seed)
}

// Shuffle permutes the remaining cards using randomness drawn from stream.
func (d *Deck) Shuffle(stream cipher.Stream) {
	perm := permutation(len(d.cards), stream)
	shuffled := make([]pinochle.Card, len(d.cards))
	for i, p := range perm {
		shuffled[i] = d.cards[p]
	}
	d.cards = shuffled
}

// Helper function to generate a random permutation of size permSize
// (Fisher-Yates over the identity).
func permutation(permSize int, stream cipher.Stream) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
