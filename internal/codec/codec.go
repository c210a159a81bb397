// Package codec implements the little-endian, length-prefixed binary wire
// format used to persist and transmit trust anchors and proof bundles.
// Every variable-length field is preceded by a uint32 length; every
// fixed-size field (hashes, counters) has no prefix.
package codec

import (
	"encoding/binary"
	"fmt"
)

// Writer accumulates a binary-encoded record.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Bytes() []byte { return w.buf }

// PutUint64 appends a fixed 8-byte little-endian value.
func (w *Writer) PutUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutFixed appends raw bytes with no length prefix. Callers must know the
// field's fixed width at decode time.
func (w *Writer) PutFixed(b []byte) {
	w.buf = append(w.buf, b...)
}

// PutBytes appends a uint32 length prefix followed by b.
func (w *Writer) PutBytes(b []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
	w.buf = append(w.buf, lenBuf[:]...)
	w.buf = append(w.buf, b...)
}

// PutBool appends a single byte: 1 for true, 0 for false.
func (w *Writer) PutBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// Reader decodes a binary record produced by Writer. It tracks its own
// cursor and returns an error on short reads instead of panicking, since
// the source may be a corrupted file on disk.
type Reader struct {
	buf []byte
	pos int
}

func NewReader(b []byte) *Reader { return &Reader{buf: b} }

func (r *Reader) remaining() int { return len(r.buf) - r.pos }

func (r *Reader) Uint64() (uint64, error) {
	if r.remaining() < 8 {
		return 0, fmt.Errorf("codec: short read for uint64 at offset %d", r.pos)
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

func (r *Reader) Fixed(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("codec: short read for %d fixed bytes at offset %d", n, r.pos)
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

func (r *Reader) Bytes() ([]byte, error) {
	if r.remaining() < 4 {
		return nil, fmt.Errorf("codec: short read for length prefix at offset %d", r.pos)
	}
	n := int(binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4]))
	r.pos += 4
	if r.remaining() < n {
		return nil, fmt.Errorf("codec: short read for %d-byte field at offset %d", n, r.pos)
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

func (r *Reader) Bool() (bool, error) {
	if r.remaining() < 1 {
		return false, fmt.Errorf("codec: short read for bool at offset %d", r.pos)
	}
	v := r.buf[r.pos] != 0
	r.pos += 1
	return v, nil
}

// Done reports whether the reader has consumed the entire buffer. Callers
// use this after decoding a record to detect trailing garbage.
func (r *Reader) Done() bool { return r.remaining() == 0 }
