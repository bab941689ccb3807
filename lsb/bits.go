package lsb

// terminator ends every encoded message.
const terminator byte = 0

// bitStream yields the bits of msg, most significant first, followed by the
// eight bits of the terminator.
type bitStream struct {
	msg []byte
	pos int
}

func newBitStream(msg []byte) *bitStream {
	return &bitStream{msg: msg}
}

func (s *bitStream) len() int {
	return (len(s.msg) + 1) * 8
}

func (s *bitStream) next() (byte, bool) {
	if s.pos >= s.len() {
		return 0, false
	}

	i := s.pos / 8
	shift := 7 - s.pos%8
	s.pos++

	if i == len(s.msg) {
		return (terminator >> shift) & 1, true
	}
	return (s.msg[i] >> shift) & 1, true
}

// bitAccumulator collects bits, most significant first, into bytes.
type bitAccumulator struct {
	cur byte
	n   int
}

// push adds one bit and reports a completed byte every eighth call.
func (a *bitAccumulator) push(bit byte) (byte, bool) {
	a.cur = a.cur<<1 | bit&1
	a.n++
	if a.n < 8 {
		return 0, false
	}

	b := a.cur
	a.cur, a.n = 0, 0
	return b, true
}
