package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToBitsRoundTrip(t *testing.T) {
	t.Run("strips 0x prefix and whitespace", func(t *testing.T) {
		bits, err := HexToBits("  0x0123456789ABCDEF  ")
		require.NoError(t, err)
		assert.Equal(t, 64, len(bits))
		assert.Equal(t, "0123456789ABCDEF", BitsToHex(bits))
	})

	t.Run("odd length is an input error", func(t *testing.T) {
		_, err := HexToBits("ABC")
		assert.Error(t, err)
		assert.IsType(t, HexDecodeError{}, err)
	})

	t.Run("width mismatch", func(t *testing.T) {
		_, err := HexToBitsWidth("ABCD", 64)
		assert.Error(t, err)
		assert.IsType(t, HexLengthError{}, err)
	})
}

func TestIntBitsRoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 0xFF, 0xDEADBEEF, 0xFFFFFFFFFFFFFFFF} {
		bits := IntToBits(n, 64)
		assert.Equal(t, n, BitsToInt(bits))
	}
}

func TestIntToBitsTruncates(t *testing.T) {
	bits := IntToBits(0xFF, 4)
	assert.Equal(t, Bits{1, 1, 1, 1}, bits)
}

func TestPermuteIdentity(t *testing.T) {
	src := Bits{1, 0, 1, 1}
	table := []int{1, 2, 3, 4}
	out, err := Permute(src, table)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestPermuteReorders(t *testing.T) {
	src := Bits{1, 0, 1, 1}
	table := []int{4, 3, 2, 1}
	out, err := Permute(src, table)
	require.NoError(t, err)
	assert.Equal(t, Bits{1, 1, 0, 1}, out)
}

func TestPermuteExpands(t *testing.T) {
	src := Bits{1, 0}
	table := []int{1, 1, 2, 2}
	out, err := Permute(src, table)
	require.NoError(t, err)
	assert.Equal(t, Bits{1, 1, 0, 0}, out)
}

func TestPermuteOutOfRange(t *testing.T) {
	_, err := Permute(Bits{1, 0}, []int{3})
	assert.Error(t, err)
	assert.IsType(t, PermuteIndexError{}, err)
}

func TestLeftRotate(t *testing.T) {
	src := Bits{1, 0, 0, 1, 1}
	assert.Equal(t, Bits{0, 0, 1, 1, 1}, LeftRotate(src, 1))
	assert.Equal(t, src, LeftRotate(src, 0))
	assert.Equal(t, src, LeftRotate(src, 5))
	assert.Equal(t, LeftRotate(src, 1), LeftRotate(src, 6))
}

func TestXOR(t *testing.T) {
	out, err := XOR(Bits{1, 0, 1}, Bits{1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, Bits{0, 1, 1}, out)

	_, err = XOR(Bits{1, 0}, Bits{1, 0, 1})
	assert.Error(t, err)
	assert.IsType(t, WidthMismatchError{}, err)
}

func TestParity(t *testing.T) {
	assert.Equal(t, uint8(0), Parity(0))
	assert.Equal(t, uint8(1), Parity(1))
	assert.Equal(t, uint8(0), Parity(0b11))
	assert.Equal(t, uint8(1), Parity(0b111))
	assert.Equal(t, uint8(0), Parity(0xFF))
}

func TestBytesBitsRoundTrip(t *testing.T) {
	raw := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	bits := BytesToBits(raw)
	assert.Equal(t, raw, BitsToBytes(bits))
}
