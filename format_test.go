package tuid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tuid"
)

func TestParse_AutoDetect(t *testing.T) {
	id := tuid.MustParse("0048d159e26aebcdef012345678")

	tests := []struct {
		name string
		in   string
	}{
		{"base58 by length 18", id.Base58()},
		{"base32 by length 22", id.Base32()},
		{"base64 by length 24", id.Base64()},
		{"hex by length 27", id.Hex()},
		{"hex upper by length 27", id.HexUpper()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tuid.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Compare(id))
		})
	}
}

func TestParse_ZeroAutoDetect(t *testing.T) {
	got, err := tuid.Parse("111111111111111111")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParse_RejectsOtherLengths(t *testing.T) {
	// Wrong length fails before any codec runs, regardless of content.
	for _, n := range []int{0, 1, 17, 19, 21, 23, 25, 26, 28, 32} {
		_, err := tuid.Parse(strings.Repeat("1", n))
		assert.ErrorIs(t, err, tuid.ErrInvalidFormat, "length %d", n)
	}
}

func TestEncode_Dispatch(t *testing.T) {
	id := tuid.MustParse("0048d159e26aebcdef012345678")

	tests := []struct {
		format tuid.Format
		want   string
	}{
		{tuid.FormatBase58, "1NzCQ6PRR6wBbn9Q7H"},
		{tuid.FormatBase32, "00938NKRKAXF6YY0938NKR"},
		{tuid.FormatHex, "0048d159e26aebcdef012345678"},
		{tuid.FormatHexUpper, "0048D159E26AEBCDEF012345678"},
		{tuid.FormatBase64, "AAAABI0VniauvN7wEjRWeA=="},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, err := id.Encode(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Every dispatched form parses back via auto-detection.
			back, err := tuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, 0, back.Compare(id))
		})
	}
}

func TestEncode_UnknownTag(t *testing.T) {
	_, err := tuid.Nil.Encode(tuid.Format(99))
	assert.ErrorIs(t, err, tuid.ErrUnsupportedFormat)
}

func TestFormatByName(t *testing.T) {
	for _, f := range []tuid.Format{
		tuid.FormatBase58,
		tuid.FormatBase32,
		tuid.FormatHex,
		tuid.FormatHexUpper,
		tuid.FormatBase64,
	} {
		got, ok := tuid.FormatByName(f.String())
		require.True(t, ok, f.String())
		assert.Equal(t, f, got)
	}

	_, ok := tuid.FormatByName("base62")
	assert.False(t, ok)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() {
		tuid.MustParse("not an id")
	})
}
