package sha3

// dsbyte is the SHA-3 domain separator (the two suffix bits 01 followed by
// the first padding bit).
const dsbyte = 0x06

// pad returns a copy of msg extended with pad10*1 to a positive multiple of
// rate/8 bytes. When msg is one byte short of a block the domain byte and
// the final bit share that byte (0x86). msg itself is never written.
func pad(msg []byte, rate int) []byte {
	rateBytes := rate / 8
	n := len(msg) + 1
	if r := n % rateBytes; r != 0 {
		n += rateBytes - r
	}
	out := make([]byte, n)
	copy(out, msg)
	out[len(msg)] = dsbyte
	out[n-1] |= 0x80
	return out
}
