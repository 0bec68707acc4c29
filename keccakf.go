package sha3

import "math/bits"

// rounds is the number of rounds of Keccak-p[1600,24].
const rounds = 24

// rc stores the round constants for use in the iota step.
var rc = [rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotc holds the rho rotation offsets, indexed [y][x] like the state.
// Lane (x, y) is rotated left by rotc[y][x] (FIPS 202, Table 2).
var rotc = [5][5]int{
	{0, 1, 62, 28, 27},
	{36, 44, 6, 55, 20},
	{3, 10, 43, 25, 39},
	{41, 45, 15, 21, 8},
	{18, 2, 61, 56, 14},
}

// keccakF1600 applies the Keccak-p[1600,24] permutation to a in place.
func keccakF1600(a *state) {
	for r := 0; r < rounds; r++ {
		theta(a)
		rhoPi(a)
		chi(a)
		iotaRound(a, r)
	}
}

// theta XORs every lane with the parities of the two neighbouring columns.
func theta(a *state) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[0][x] ^ a[1][x] ^ a[2][x] ^ a[3][x] ^ a[4][x]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			a[y][x] ^= d
		}
	}
}

// rhoPi rotates each lane (x, y) by its offset and moves it to
// (y, 2x+3y mod 5).
func rhoPi(a *state) {
	var b state
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b[(2*x+3*y)%5][y] = bits.RotateLeft64(a[y][x], rotc[y][x])
		}
	}
	*a = b
}

func chi(a *state) {
	for y := 0; y < 5; y++ {
		row := a[y]
		for x := 0; x < 5; x++ {
			a[y][x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

func iotaRound(a *state, round int) {
	a[0][0] ^= rc[round]
}
