package Filters

import (
	"math"
	"math/rand/v2"

	Go_Structs "github.com/g-m-twostay/go-structs"
)

// Bloom is a set of strings that answers membership with one sided error:
// an added string is always reported present, while an absent one is
// reported present only by chance. Strings can never be taken back out.
//
// The k probe locations of a string come from double hashing a pair of
// seeded digests. The seeds are drawn once at construction, so a filter
// probes any given string at the same locations for its whole life.
type Bloom struct {
	bits   Go_Structs.BitArray
	s1, s2 Go_Structs.Hasher
	m, k   uint
}

// New returns an empty Bloom filter sized for about n distinct strings at
// bitsPerElement filter bits each. Nonpositive arguments fall back to 1
// element and 10 bits; 10 bits per element puts the false positive rate
// near 1%.
func New(n, bitsPerElement int) *Bloom {
	if n < 1 {
		n = 1
	}
	if bitsPerElement < 1 {
		bitsPerElement = 10
	}
	m := max(uint(n*bitsPerElement), 8)
	//k = m/n*ln(2), rounded up and clamped to [1, 30].
	k := min(max(uint(math.Ceil(float64(m)/float64(n)*math.Ln2)), 1), 30)
	return &Bloom{
		bits: Go_Structs.NewBitArray(int(m)),
		s1:   Go_Structs.Hasher(rand.Uint64()),
		s2:   Go_Structs.Hasher(rand.Uint64()),
		m:    m,
		k:    k,
	}
}

func (u *Bloom) probes(v string) (uint, uint) {
	h1, h2 := u.s1.HashString(v), u.s2.HashString(v)
	return h1, h2 | 1 //an even stride could collapse the k locations onto a few
}

// Add v to the set.
// Time: O(k)
func (u *Bloom) Add(v string) {
	h1, h2 := u.probes(v)
	for i := range u.k {
		u.bits.Up(int((h1 + i*h2) % u.m))
	}
}

// MayContain reports whether v might have been added. False is exact; true
// is wrong for strings never added at about the estimated false positive
// rate.
// Time: O(k)
func (u *Bloom) MayContain(v string) bool {
	h1, h2 := u.probes(v)
	for i := range u.k {
		if !u.bits.Get(int((h1 + i*h2) % u.m)) {
			return false
		}
	}
	return true
}

// EstimateFalsePositiveRate of MayContain on absent strings once about n
// distinct ones have been added.
func (u *Bloom) EstimateFalsePositiveRate(n int) float64 {
	if n < 1 {
		return 0
	}
	//(1-e^(-k*n/m))^k
	return math.Pow(1-math.Exp(-float64(u.k)*float64(n)/float64(u.m)), float64(u.k))
}

// Reset empties the set. The size and the probe seeds stay.
func (u *Bloom) Reset() {
	u.bits.Clear()
}

// Bits in the filter.
func (u *Bloom) Bits() uint {
	return u.m
}

// Hashes probed per string.
func (u *Bloom) Hashes() uint {
	return u.k
}
