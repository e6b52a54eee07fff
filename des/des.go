// Package des implements single-block DES encryption and decryption, bit
// exact with FIPS 46-3, plus a round-parameterised variant that exposes the
// post-round (L, R) halves. The round-parameterised variant is the oracle
// surface consumed by the differential and linear attacks in diffattack and
// linattack: it behaves exactly like full DES truncated to R rounds,
// including the final swap and FP, which is what a reduced-round DES
// implementation under attack would expose.
package des

import (
	"github.com/krystools/descryptanalysis/bitops"
	"github.com/krystools/descryptanalysis/tables"
)

const (
	// KeySize is the length in bytes of a DES key.
	KeySize = 8
	// BlockSize is the length in bytes of a DES block.
	BlockSize = 8
	// Rounds is the number of rounds in full DES.
	Rounds = 16
)

// Block is a single 64-bit DES plaintext or ciphertext block.
type Block [BlockSize]byte

// Oracle represents an encryption black box with a fixed, unknown key:
// given a plaintext block it returns the corresponding ciphertext. Attacks
// in diffattack and linattack consume an Oracle without ever inspecting the
// key that produced it.
type Oracle func(plaintext Block) Block

// Cipher is a single DES key schedule together with the encrypt/decrypt
// operations it parameterises.
type Cipher struct {
	subkeys [Rounds]bitops.Bits
}

// NewCipher derives the 16 round subkeys from an 8-byte key via PC-1,
// per-round rotation of the 28-bit C/D halves, and PC-2.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	keyBits := bitops.BytesToBits(key)
	pc1, err := bitops.Permute(keyBits, tables.PC1)
	if err != nil {
		return nil, err
	}

	c := append(bitops.Bits{}, pc1[:28]...)
	d := append(bitops.Bits{}, pc1[28:]...)

	var c1 Cipher
	for i := 0; i < Rounds; i++ {
		c = bitops.LeftRotate(c, tables.ROT[i])
		d = bitops.LeftRotate(d, tables.ROT[i])

		cd := make(bitops.Bits, 0, 56)
		cd = append(cd, c...)
		cd = append(cd, d...)

		subkey, err := bitops.Permute(cd, tables.PC2)
		if err != nil {
			return nil, err
		}
		c1.subkeys[i] = subkey
	}
	return &c1, nil
}

// Subkey returns the 48-bit subkey for round i (0-indexed: Subkey(0) is K1,
// Subkey(15) is K16).
func (c *Cipher) Subkey(i int) bitops.Bits {
	return append(bitops.Bits{}, c.subkeys[i]...)
}

// feistelF computes the DES round function f(R, K): expand R to 48 bits,
// XOR with the subkey, substitute through the eight S-boxes, and permute
// the result through P.
func feistelF(r, k bitops.Bits) (bitops.Bits, error) {
	expanded, err := bitops.Permute(r, tables.E)
	if err != nil {
		return nil, err
	}
	mixed, err := bitops.XOR(expanded, k)
	if err != nil {
		return nil, err
	}

	substituted := make(bitops.Bits, 32)
	for i := 0; i < 8; i++ {
		group := mixed[i*6 : i*6+6]
		x := int(bitops.BitsToInt(group))
		y := tables.SBoxes[i].Lookup(x)
		copy(substituted[i*4:i*4+4], bitops.IntToBits(uint64(y), 4))
	}

	return bitops.Permute(substituted, tables.P)
}

// EncryptRounds runs rounds Feistel rounds (1 <= rounds <= 16) over block
// using subkeys K1..K_rounds in order, applies the final L/R swap and FP,
// and returns the resulting ciphertext together with the post-round halves
// L_rounds and R_rounds (each 32 bits, MSB-first). This is the oracle
// surface used by the round-reduced attacks.
func (c *Cipher) EncryptRounds(block Block, rounds int) (ciphertext Block, lR, rR bitops.Bits, err error) {
	if rounds < 1 || rounds > Rounds {
		return Block{}, nil, nil, RoundCountError(rounds)
	}

	ipBits, err := bitops.Permute(bitops.BytesToBits(block[:]), tables.IP)
	if err != nil {
		return Block{}, nil, nil, err
	}

	l := append(bitops.Bits{}, ipBits[:32]...)
	r := append(bitops.Bits{}, ipBits[32:]...)

	for i := 0; i < rounds; i++ {
		fOut, ferr := feistelF(r, c.subkeys[i])
		if ferr != nil {
			return Block{}, nil, nil, ferr
		}
		newR, xerr := bitops.XOR(l, fOut)
		if xerr != nil {
			return Block{}, nil, nil, xerr
		}
		l, r = r, newR
	}

	swapped := make(bitops.Bits, 0, 64)
	swapped = append(swapped, r...)
	swapped = append(swapped, l...)

	fpBits, err := bitops.Permute(swapped, tables.FP)
	if err != nil {
		return Block{}, nil, nil, err
	}

	var ct Block
	copy(ct[:], bitops.BitsToBytes(fpBits))
	return ct, l, r, nil
}

// Encrypt performs the full 16-round DES block encryption.
func (c *Cipher) Encrypt(block Block) Block {
	ct, _, _, _ := c.EncryptRounds(block, Rounds)
	return ct
}

// Decrypt performs the full 16-round DES block decryption: identical
// structure to Encrypt, with subkeys applied in reverse order K16..K1.
func (c *Cipher) Decrypt(block Block) Block {
	ipBits, err := bitops.Permute(bitops.BytesToBits(block[:]), tables.IP)
	if err != nil {
		return Block{}
	}

	l := append(bitops.Bits{}, ipBits[:32]...)
	r := append(bitops.Bits{}, ipBits[32:]...)

	for i := Rounds - 1; i >= 0; i-- {
		fOut, _ := feistelF(r, c.subkeys[i])
		newR, _ := bitops.XOR(l, fOut)
		l, r = r, newR
	}

	swapped := make(bitops.Bits, 0, 64)
	swapped = append(swapped, r...)
	swapped = append(swapped, l...)

	fpBits, _ := bitops.Permute(swapped, tables.FP)

	var pt Block
	copy(pt[:], bitops.BitsToBytes(fpBits))
	return pt
}

// RoundOracle returns an Oracle that encrypts with exactly rounds Feistel
// rounds under c's key, the reduced-round attack surface differential and
// linear key recovery run against.
func (c *Cipher) RoundOracle(rounds int) Oracle {
	return func(plaintext Block) Block {
		ct, _, _, _ := c.EncryptRounds(plaintext, rounds)
		return ct
	}
}

// BlockFromHex decodes a 16-character hex string into a Block.
func BlockFromHex(s string) (Block, error) {
	bits, err := bitops.HexToBitsWidth(s, 64)
	if err != nil {
		return Block{}, err
	}
	var b Block
	copy(b[:], bitops.BitsToBytes(bits))
	return b, nil
}

// Hex encodes a Block as an upper-case hex string.
func (b Block) Hex() string {
	return bitops.BitsToHex(bitops.BytesToBits(b[:]))
}

// InvertFinalRound undoes a ciphertext's final swap and FP by applying IP
// (FP's inverse), recovering the post-round halves R_rounds and L_rounds
// that EncryptRounds produced. It never needs the actual round count: both
// attack packages use this to read R_{rounds-1} = L_rounds directly out of
// a ciphertext produced by an oracle whose round count they only know, not
// control.
func InvertFinalRound(c Block) (rRounds, lRounds bitops.Bits, err error) {
	ipBits, err := bitops.Permute(bitops.BytesToBits(c[:]), tables.IP)
	if err != nil {
		return nil, nil, err
	}
	return ipBits[:32], ipBits[32:], nil
}

// ExpandRightHalf expands a 32-bit right half through the E permutation,
// used by both attack packages to derive last-round S-box inputs.
func ExpandRightHalf(r bitops.Bits) (bitops.Bits, error) {
	return bitops.Permute(r, tables.E)
}
