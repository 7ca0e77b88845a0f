package geohash

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	mmgeohash "github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lon       float64
		precision int
		expected  string
	}{
		{name: "mountain view", lat: 37.422, lon: -122.0841, precision: 12, expected: "9q9hvumnfq3j"},
		{name: "new york", lat: 40.72470580906875, lon: -73.99975952911369, precision: 8, expected: "dr5rsjen"},
		{name: "origin", lat: 0, lon: 0, precision: 1, expected: "s"},
		{name: "south west corner", lat: -90, lon: -180, precision: 5, expected: "00000"},
		{name: "north east corner", lat: 90, lon: 180, precision: 5, expected: "zzzzz"},
		{name: "tokyo", lat: 35.681236, lon: 139.767125, precision: 6, expected: "xn76ur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Encode(tt.lat, tt.lon, tt.precision)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, hash)
		})
	}
}

func TestEncode_Validation(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lon       float64
		precision int
		message   string
	}{
		{name: "latitude too large", lat: 2000, lon: 0, precision: 5, message: "latitude must be <= 90"},
		{name: "latitude too small", lat: -90.5, lon: 0, precision: 5, message: "latitude must be >= -90"},
		{name: "longitude too small", lat: 0, lon: -200, precision: 5, message: "longitude must be >= -180"},
		{name: "longitude too large", lat: 0, lon: 180.01, precision: 5, message: "longitude must be <= 180"},
		{name: "precision zero", lat: 0, lon: 0, precision: 0, message: "precision must be >= 1"},
		{name: "precision too large", lat: 0, lon: 0, precision: 13, message: "precision must be <= 12"},
		{name: "latitude NaN", lat: math.NaN(), lon: 0, precision: 5, message: "latitude must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Encode(tt.lat, tt.lon, tt.precision)

			assert.Empty(t, hash)
			assert.ErrorIs(t, err, ErrRange)
			assert.Contains(t, err.Error(), tt.message)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestEncode_LengthAndAlphabet(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		lat := rnd.Float64()*180 - 90
		lon := rnd.Float64()*360 - 180
		precision := rnd.Intn(MaxPrecision) + 1

		hash, err := Encode(lat, lon, precision)
		require.NoError(t, err)
		require.Len(t, hash, precision)
		for _, c := range hash {
			require.True(t, strings.ContainsRune(Alphabet, c), "unexpected %q in %q", c, hash)
		}
	}
}

func TestEncode_MatchesReferenceLibrary(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		lat := rnd.Float64()*178 - 89
		lon := rnd.Float64()*358 - 179
		precision := rnd.Intn(MaxPrecision) + 1

		hash, err := Encode(lat, lon, precision)
		require.NoError(t, err)
		assert.Equal(t, mmgeohash.EncodeWithPrecision(lat, lon, uint(precision)), hash,
			"lat=%v lon=%v precision=%d", lat, lon, precision)
	}
}

func TestDecode(t *testing.T) {
	lat, lon := 40.72470580906875, -73.99975952911369

	hash, err := Encode(lat, lon, 8)
	require.NoError(t, err)

	point, err := Decode(hash)
	require.NoError(t, err)
	assert.InDelta(t, lat, point.Lat, 0.001)
	assert.InDelta(t, lon, point.Lon, 0.001)
}

func TestDecode_CaseInsensitive(t *testing.T) {
	lower, err := Decode("dr5rsjen")
	require.NoError(t, err)

	upper, err := Decode("DR5RSJEN")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestDecode_MatchesReferenceLibrary(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		hash, err := Encode(rnd.Float64()*180-90, rnd.Float64()*360-180, rnd.Intn(MaxPrecision)+1)
		require.NoError(t, err)

		point, err := Decode(hash)
		require.NoError(t, err)

		lat, lon := mmgeohash.DecodeCenter(hash)
		assert.InDelta(t, lat, point.Lat, 1e-9, hash)
		assert.InDelta(t, lon, point.Lon, 1e-9, hash)
	}
}

func TestDecode_RoundTripWithinCell(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		lat := rnd.Float64()*180 - 90
		lon := rnd.Float64()*360 - 180
		precision := rnd.Intn(MaxPrecision) + 1

		hash, err := Encode(lat, lon, precision)
		require.NoError(t, err)

		box, err := Bounds(hash)
		require.NoError(t, err)
		center := box.Center()

		require.LessOrEqual(t, math.Abs(center.Lat-lat), box.LatError(), hash)
		require.LessOrEqual(t, math.Abs(center.Lon-lon), box.LonError(), hash)
	}
}

func TestDecode_PrecisionEightError(t *testing.T) {
	box, err := Bounds("dr5rsjen")
	require.NoError(t, err)

	assert.Less(t, box.LatError(), 0.0001)
	assert.Less(t, box.LonError(), 0.0002)
}

func TestBounds(t *testing.T) {
	box, err := Bounds("s")
	require.NoError(t, err)

	assert.Equal(t, BoundingBox{
		SW: Coordinate{Lat: 0, Lon: 0},
		NE: Coordinate{Lat: 45, Lon: 45},
	}, box)
	assert.Equal(t, Coordinate{Lat: 22.5, Lon: 22.5}, box.Center())
}

func TestDecode_Validation(t *testing.T) {
	tests := []struct {
		name string
		hash string
		kind error
	}{
		{name: "empty", hash: "", kind: ErrEmpty},
		{name: "excluded letter a", hash: "dr5a", kind: ErrAlphabet},
		{name: "excluded letter i", hash: "i", kind: ErrAlphabet},
		{name: "excluded letter l", hash: "9ql", kind: ErrAlphabet},
		{name: "excluded letter o", hash: "o", kind: ErrAlphabet},
		{name: "punctuation", hash: "dr5-", kind: ErrAlphabet},
		{name: "too long", hash: "9q9hvumnfq3jk", kind: ErrRange},
		{name: "kelvin sign", hash: "dr5rsje\u212a", kind: ErrAlphabet},
		{name: "non-ascii within length", hash: "9q9hvumnfq\u00e9", kind: ErrAlphabet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.hash)

			assert.ErrorIs(t, err, tt.kind)
			assert.False(t, Valid(tt.hash))
		})
	}
}

func TestDecode_AlphabetErrorNamesCharacter(t *testing.T) {
	_, err := Decode("dr5a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "'a'")
	assert.Contains(t, err.Error(), `"dr5a"`)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("9q9hvumnfq3j"))
	assert.True(t, Valid("DR5R"))
	assert.False(t, Valid(""))
}

func TestDecode_NonASCIIErrorNamesRune(t *testing.T) {
	_, err := Decode("dr5rsje\u212a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "'\u212a'")
}
