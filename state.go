package sha3

import "encoding/binary"

// state is the 1600-bit Keccak state: 25 lanes indexed [y][x].
// Sponge lane i lives at (i/5, i%5). The zero value is the initial state.
type state [5][5]uint64

// absorb XORs w into sponge lane i.
func (a *state) absorb(i int, w uint64) {
	a[i/5][i%5] ^= w
}

// absorbBlock absorbs one rate-sized block and permutes.
// len(block) must be a multiple of 8.
func (a *state) absorbBlock(block []byte) {
	for i := 0; len(block) > 0; i++ {
		a.absorb(i, binary.LittleEndian.Uint64(block))
		block = block[8:]
	}
	keccakF1600(a)
}

// squeeze reads bits/8 bytes of output, permuting after every rate-sized
// chunk, including the last one.
func (a *state) squeeze(rate, bits int) []byte {
	n := bits / 8
	lanes := rate / 64
	out := make([]byte, 0, n+rate/8)
	for len(out) < n {
		for i := 0; i < lanes; i++ {
			out = binary.LittleEndian.AppendUint64(out, a[i/5][i%5])
		}
		keccakF1600(a)
	}
	return out[:n]
}
