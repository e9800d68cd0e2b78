package Go_BST

import (
	"math/bits"
)

// New BitArray holding at least size bits, all down.
func New(size int) BitArray {
	return BitArray{bits: make([]uint, words(size))}
}

// BitArray is a fixed word array of bits. The zero value holds no bits; call Grow before using it.
type BitArray struct {
	bits []uint
}

func words(size int) int {
	return (size + bits.UintSize - 1) / bits.UintSize
}

// Len is the number of addressable bits, always a multiple of the word size.
func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

// Grow the array so that it holds at least size bits. Existing bits are kept.
func (u *BitArray) Grow(size int) {
	if n := words(size); n > len(u.bits) {
		u.bits = append(u.bits, make([]uint, n-len(u.bits))...)
	}
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

// Count the bits that are up.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}

// Reset every bit to down without releasing memory.
func (u BitArray) Reset() {
	clear(u.bits)
}
