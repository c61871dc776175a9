// Package binfile reads and writes the flat record layout used by the
// services and bookings data files: little-endian int32 integers and
// strings stored as [int32 byteLength][raw bytes].
package binfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	ErrTruncated      = errors.New("binfile: truncated input")
	ErrNegativeLength = errors.New("binfile: negative length")
	ErrOutOfRange     = errors.New("binfile: value out of int32 range")
)

var order = binary.LittleEndian

// Writer accumulates records in memory. Callers hand Bytes() to whatever
// performs the actual file replacement.
type Writer struct {
	buf bytes.Buffer
	err error
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Int32(v int) {
	if w.err != nil {
		return
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		w.err = fmt.Errorf("%w: %d", ErrOutOfRange, v)
		return
	}
	var b [4]byte
	order.PutUint32(b[:], uint32(int32(v)))
	w.buf.Write(b[:])
}

func (w *Writer) String(s string) {
	w.Int32(len(s))
	if w.err != nil {
		return
	}
	w.buf.WriteString(s)
}

// Bytes returns the encoded data, or the first error hit while encoding.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

// Reader decodes from a fully buffered input. The first failure sticks;
// subsequent calls return zero values and Err reports it.
type Reader struct {
	data []byte
	off  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadAll buffers r and wraps it in a Reader.
func ReadAll(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewReader(data), nil
}

func (r *Reader) Int32() int {
	if r.err != nil {
		return 0
	}
	if len(r.data)-r.off < 4 {
		r.err = fmt.Errorf("%w: need 4 bytes at offset %d", ErrTruncated, r.off)
		return 0
	}
	v := int32(order.Uint32(r.data[r.off:]))
	r.off += 4
	return int(v)
}

func (r *Reader) String() string {
	n := r.Int32()
	if r.err != nil {
		return ""
	}
	if n < 0 {
		r.err = fmt.Errorf("%w: %d at offset %d", ErrNegativeLength, n, r.off-4)
		return ""
	}
	if len(r.data)-r.off < n {
		r.err = fmt.Errorf("%w: string of %d bytes at offset %d", ErrTruncated, n, r.off)
		return ""
	}
	s := string(r.data[r.off : r.off+n])
	r.off += n
	return s
}

// Count reads a record count and rejects values that cannot possibly fit
// in the remaining input, given the smallest record size in bytes.
func (r *Reader) Count(minRecordSize int) int {
	n := r.Int32()
	if r.err != nil {
		return 0
	}
	if n < 0 {
		r.err = fmt.Errorf("%w: record count %d", ErrNegativeLength, n)
		return 0
	}
	if minRecordSize > 0 && n > r.Remaining()/minRecordSize {
		r.err = fmt.Errorf("%w: %d records declared, %d bytes left", ErrTruncated, n, r.Remaining())
		return 0
	}
	return n
}

func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

func (r *Reader) Err() error {
	return r.err
}
