package binfile

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_LayoutIsLittleEndianLengthPrefixed(t *testing.T) {
	w := NewWriter()
	w.Int32(1)
	w.String("Bus")
	w.String("")

	data, err := w.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		1, 0, 0, 0,
		3, 0, 0, 0, 'B', 'u', 's',
		0, 0, 0, 0,
	}, data)
}

func TestReader_DecodesWhatWriterWrote(t *testing.T) {
	w := NewWriter()
	w.Int32(-7)
	w.String("Chandigarh")
	w.String("")
	w.Int32(math.MaxInt32)
	data, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(data)
	assert.Equal(t, -7, r.Int32())
	assert.Equal(t, "Chandigarh", r.String())
	assert.Equal(t, "", r.String())
	assert.Equal(t, math.MaxInt32, r.Int32())
	assert.NoError(t, r.Err())
	assert.Equal(t, 0, r.Remaining())
}

func TestReader_RawBytesPassThrough(t *testing.T) {
	raw := string([]byte{0xff, 0x00, 0xfe})
	w := NewWriter()
	w.String(raw)
	data, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(data)
	assert.Equal(t, raw, r.String())
	assert.NoError(t, r.Err())
}

func TestReader_Truncated(t *testing.T) {
	r := NewReader([]byte{1, 0})
	assert.Equal(t, 0, r.Int32())
	assert.ErrorIs(t, r.Err(), ErrTruncated)

	r = NewReader([]byte{10, 0, 0, 0, 'a', 'b'})
	assert.Equal(t, "", r.String())
	assert.ErrorIs(t, r.Err(), ErrTruncated)
}

func TestReader_NegativeStringLength(t *testing.T) {
	r := NewReader([]byte{0xff, 0xff, 0xff, 0xff})
	assert.Equal(t, "", r.String())
	assert.ErrorIs(t, r.Err(), ErrNegativeLength)
}

func TestReader_ErrorIsSticky(t *testing.T) {
	r := NewReader([]byte{0xff, 0xff, 0xff, 0xff, 1, 0, 0, 0})
	_ = r.String()
	assert.Equal(t, 0, r.Int32())
	assert.ErrorIs(t, r.Err(), ErrNegativeLength)
}

func TestReader_CountRejectsImpossibleValues(t *testing.T) {
	r := NewReader([]byte{100, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, 0, r.Count(8))
	assert.ErrorIs(t, r.Err(), ErrTruncated)

	r = NewReader([]byte{0xfe, 0xff, 0xff, 0xff})
	assert.Equal(t, 0, r.Count(8))
	assert.ErrorIs(t, r.Err(), ErrNegativeLength)

	r = NewReader([]byte{0, 0, 0, 0})
	assert.Equal(t, 0, r.Count(8))
	assert.NoError(t, r.Err())
}

func TestWriter_OutOfRange(t *testing.T) {
	w := NewWriter()
	w.Int32(math.MaxInt32 + 1)
	w.String("ignored")

	_, err := w.Bytes()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReadAll(t *testing.T) {
	r, err := ReadAll(strings.NewReader("\x02\x00\x00\x00"))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Int32())
}
