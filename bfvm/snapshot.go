package bfvm

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

var (
	ErrProgramMismatch = errors.New("snapshot belongs to a different program")
	ErrBadSnapshot     = errors.New("bad snapshot")
)

type snapshot struct {
	Digest  [32]byte
	IP      int
	Pointer int
	Tape    []byte
}

// Snapshot writes the registers and tape as a zstd-compressed gob stream. The
// program itself is not stored, only its digest; I/O endpoints are not stored.
func (m *Machine) Snapshot(w io.Writer) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(enc).Encode(snapshot{
		Digest:  m.Program.Digest(),
		IP:      m.IP,
		Pointer: m.Pointer,
		Tape:    m.Tape[:],
	}); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Restore loads a stream written by Snapshot. The machine must hold the same
// program the snapshot was taken from.
func (m *Machine) Restore(r io.Reader) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer dec.Close()

	var s snapshot
	if err := gob.NewDecoder(dec).Decode(&s); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if s.Digest != m.Program.Digest() {
		return fmt.Errorf("%w: machine holds %s", ErrProgramMismatch, m.Program.ID())
	}
	if s.IP < 0 || s.IP > len(m.Program) ||
		s.Pointer < 0 || s.Pointer >= TapeSize ||
		len(s.Tape) != TapeSize {
		return ErrBadSnapshot
	}

	m.IP = s.IP
	m.Pointer = s.Pointer
	copy(m.Tape[:], s.Tape)
	return nil
}
