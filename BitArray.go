package Go_Structs

import (
	"math/bits"
)

// NewBitArray creates a BitArray holding at least size bits, rounded up to a
// whole number of words.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Clear lowers every bit.
func (u BitArray) Clear() {
	for i := range u.bits {
		u.bits[i] = 0
	}
}

// Ones counts the raised bits.
func (u BitArray) Ones() int {
	c := 0
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return c
}
