package geohash

import (
	"strings"
)

// Direction is a compass direction from a cell to its neighbour.
type Direction string

const (
	North     Direction = "n"
	East      Direction = "e"
	South     Direction = "s"
	West      Direction = "w"
	NorthEast Direction = "ne"
	SouthEast Direction = "se"
	SouthWest Direction = "sw"
	NorthWest Direction = "nw"
)

// Directions lists all eight directions clockwise from north.
var Directions = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// neighbourTable and borderTable are indexed by direction, then by len(hash)%2.
// Odd-length hashes end in a character that is 8 cells wide and 4 tall; even-length
// ones end in a 4 wide, 8 tall character.
var neighbourTable = map[Direction][2]string{
	North: {"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"},
	South: {"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"},
	East:  {"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"},
	West:  {"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"},
}

var borderTable = map[Direction][2]string{
	North: {"prxz", "bcfguvyz"},
	South: {"028b", "0145hjnp"},
	East:  {"bcfguvyz", "prxz"},
	West:  {"0145hjnp", "028b"},
}

// NeighbourSet holds the eight cells surrounding a geohash.
type NeighbourSet struct {
	N  string `json:"n"`
	NE string `json:"ne"`
	E  string `json:"e"`
	SE string `json:"se"`
	S  string `json:"s"`
	SW string `json:"sw"`
	W  string `json:"w"`
	NW string `json:"nw"`
}

// Get returns the neighbour in direction d, or "" if d is unknown.
func (ns NeighbourSet) Get(d Direction) string {
	switch d {
	case North:
		return ns.N
	case NorthEast:
		return ns.NE
	case East:
		return ns.E
	case SouthEast:
		return ns.SE
	case South:
		return ns.S
	case SouthWest:
		return ns.SW
	case West:
		return ns.W
	case NorthWest:
		return ns.NW
	}
	return ""
}

// ParseDirection parses one of the primary directions n, e, s or w.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(s))
	if _, ok := neighbourTable[d]; !ok {
		return "", invalid(ErrDirection, `direction must be one of "n", "e", "s", "w", got %q`, s)
	}
	return d, nil
}

// Adjacent returns the geohash of the same length next to hash in direction dir.
// Stepping east or west across the antimeridian wraps around. Stepping north or
// south past a pole fails with ErrBoundary.
func Adjacent(hash string, dir Direction) (string, error) {
	hash, err := normalize(hash)
	if err != nil {
		return "", err
	}
	d, err := ParseDirection(string(dir))
	if err != nil {
		return "", err
	}
	next, ok := adjacent(hash, d)
	if !ok {
		return "", beyondPole(hash, d)
	}
	return next, nil
}

// adjacent expects a normalized hash and a primary direction. It reports false
// when the step would cross a pole.
func adjacent(hash string, dir Direction) (string, bool) {
	parent, last := hash[:len(hash)-1], hash[len(hash)-1]
	typ := len(hash) % 2

	if strings.IndexByte(borderTable[dir][typ], last) >= 0 {
		if parent == "" {
			if dir == North || dir == South {
				return "", false
			}
			// longitude is cyclic, the table substitution below wraps to the far side
		} else {
			var ok bool
			if parent, ok = adjacent(parent, dir); !ok {
				return "", false
			}
		}
	}

	i := strings.IndexByte(neighbourTable[dir][typ], last)
	return parent + string(Alphabet[i]), true
}

func beyondPole(hash string, dir Direction) error {
	return invalid(ErrBoundary, "geohash %q has no neighbour to the %s", hash, dirName(dir))
}

// Neighbours returns all eight cells surrounding hash. Diagonals are derived
// from the north and south neighbours so border crossings carry over.
func Neighbours(hash string) (NeighbourSet, error) {
	hash, err := normalize(hash)
	if err != nil {
		return NeighbourSet{}, err
	}

	var ns NeighbourSet
	steps := []struct {
		dst  *string
		from *string
		dir  Direction
	}{
		{&ns.N, &hash, North},
		{&ns.E, &hash, East},
		{&ns.S, &hash, South},
		{&ns.W, &hash, West},
		{&ns.NE, &ns.N, East},
		{&ns.SE, &ns.S, East},
		{&ns.SW, &ns.S, West},
		{&ns.NW, &ns.N, West},
	}
	for _, st := range steps {
		var ok bool
		if *st.dst, ok = adjacent(*st.from, st.dir); !ok {
			return NeighbourSet{}, beyondPole(*st.from, st.dir)
		}
	}
	return ns, nil
}

func dirName(d Direction) string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return string(d)
}
