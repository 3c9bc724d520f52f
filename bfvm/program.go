package bfvm

import (
	"github.com/mr-tron/base58"
	"github.com/zeebo/blake3"
)

type Program []Op

// Digest is the blake3-256 sum of the program's op bytes.
func (p Program) Digest() [32]byte {
	buf := make([]byte, len(p))
	for i, op := range p {
		buf[i] = byte(op)
	}
	return blake3.Sum256(buf)
}

// ID is the base58 form of Digest, for logs and error messages.
func (p Program) ID() string {
	sum := p.Digest()
	return base58.Encode(sum[:])
}

// Count returns how many times op appears in the program.
func (p Program) Count(op Op) (n int) {
	for _, o := range p {
		if o == op {
			n++
		}
	}
	return
}
