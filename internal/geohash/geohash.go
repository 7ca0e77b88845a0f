// Package geohash encodes latitude/longitude pairs into base-32 geohash strings,
// decodes them back to cell centers and walks between adjacent cells.
//
// All functions are pure and safe for concurrent use.
package geohash

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// Alphabet is the geohash base-32 alphabet. It omits a, i, l and o.
	Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

	MinPrecision = 1
	MaxPrecision = 12

	bitsPerChar = 5
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BoundingBox is the cell a geohash narrows down to.
type BoundingBox struct {
	SW Coordinate `json:"sw"`
	NE Coordinate `json:"ne"`
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (b.SW.Lat + b.NE.Lat) / 2,
		Lon: (b.SW.Lon + b.NE.Lon) / 2,
	}
}

// LatError returns half the box height, the worst-case latitude error of its center.
func (b BoundingBox) LatError() float64 {
	return (b.NE.Lat - b.SW.Lat) / 2
}

// LonError returns half the box width.
func (b BoundingBox) LonError() float64 {
	return (b.NE.Lon - b.SW.Lon) / 2
}

// Encode converts a coordinate into a geohash of exactly precision characters.
func Encode(lat, lon float64, precision int) (string, error) {
	switch {
	case math.IsNaN(lat):
		return "", invalid(ErrRange, "latitude must be a number")
	case math.IsNaN(lon):
		return "", invalid(ErrRange, "longitude must be a number")
	case lat < -90:
		return "", invalid(ErrRange, "latitude must be >= -90, got %v", lat)
	case lat > 90:
		return "", invalid(ErrRange, "latitude must be <= 90, got %v", lat)
	case lon < -180:
		return "", invalid(ErrRange, "longitude must be >= -180, got %v", lon)
	case lon > 180:
		return "", invalid(ErrRange, "longitude must be <= 180, got %v", lon)
	case precision < MinPrecision:
		return "", invalid(ErrRange, "precision must be >= %d, got %d", MinPrecision, precision)
	case precision > MaxPrecision:
		return "", invalid(ErrRange, "precision must be <= %d, got %d", MaxPrecision, precision)
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	var sb strings.Builder
	sb.Grow(precision)

	idx, bit := 0, 0
	for i := 0; sb.Len() < precision; i++ {
		idx <<= 1
		if i%2 == 0 {
			mid := (lonMin + lonMax) / 2
			if lon >= mid {
				idx |= 1
				lonMin = mid
			} else {
				lonMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if lat >= mid {
				idx |= 1
				latMin = mid
			} else {
				latMax = mid
			}
		}

		bit++
		if bit == bitsPerChar {
			sb.WriteByte(Alphabet[idx])
			idx, bit = 0, 0
		}
	}

	return sb.String(), nil
}

// Bounds returns the cell covered by hash.
func Bounds(hash string) (BoundingBox, error) {
	hash, err := normalize(hash)
	if err != nil {
		return BoundingBox{}, err
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	// i counts bits across the whole hash, not per character
	i := 0
	for _, c := range []byte(hash) {
		idx := strings.IndexByte(Alphabet, c)
		for mask := 1 << (bitsPerChar - 1); mask > 0; mask >>= 1 {
			set := idx&mask != 0
			if i%2 == 0 {
				mid := (lonMin + lonMax) / 2
				if set {
					lonMin = mid
				} else {
					lonMax = mid
				}
			} else {
				mid := (latMin + latMax) / 2
				if set {
					latMin = mid
				} else {
					latMax = mid
				}
			}
			i++
		}
	}

	return BoundingBox{
		SW: Coordinate{Lat: latMin, Lon: lonMin},
		NE: Coordinate{Lat: latMax, Lon: lonMax},
	}, nil
}

// Decode returns the center point of the cell covered by hash.
func Decode(hash string) (Coordinate, error) {
	box, err := Bounds(hash)
	if err != nil {
		return Coordinate{}, err
	}
	return box.Center(), nil
}

// Valid reports whether hash is a well-formed geohash.
func Valid(hash string) bool {
	_, err := normalize(hash)
	return err == nil
}

// normalize lowercases hash and checks its characters and length. Only ASCII
// letters are folded, so no other rune can lowercase into the alphabet.
func normalize(hash string) (string, error) {
	if hash == "" {
		return "", invalid(ErrEmpty, "geohash must not be empty")
	}

	b := []byte(hash)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
			b[i] = c
		}
		if strings.IndexByte(Alphabet, c) < 0 {
			if c >= utf8.RuneSelf {
				r, _ := utf8.DecodeRuneInString(hash[i:])
				return "", invalid(ErrAlphabet, "invalid character %q in geohash %q", r, hash)
			}
			return "", invalid(ErrAlphabet, "invalid character %q in geohash %q", rune(c), hash)
		}
	}

	if len(b) > MaxPrecision {
		return "", invalid(ErrRange, "geohash length must be <= %d, got %d", MaxPrecision, len(b))
	}
	return string(b), nil
}
