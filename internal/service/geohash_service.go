package service

import (
	"context"
	"fmt"
	"strings"

	"geohash-api/internal/geohash"
	"geohash-api/internal/models"

	"github.com/rs/zerolog"
)

// GeohashService contains the business logic behind the geohash endpoints and commands
type GeohashService struct{}

// NewGeohashService creates a new geohash service
func NewGeohashService() *GeohashService {
	return &GeohashService{}
}

// Encode converts a coordinate into the cell of the given precision that contains it
func (s *GeohashService) Encode(ctx context.Context, lat, lon float64, precision int) (*models.Cell, error) {
	hash, err := geohash.Encode(lat, lon, precision)
	if err != nil {
		return nil, fmt.Errorf("service: failed to encode coordinates: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Float64("lat", lat).
		Float64("lon", lon).
		Int("precision", precision).
		Str("geohash", hash).
		Msg("encoded coordinates")

	return cellOf(hash)
}

// Decode returns the cell described by hash
func (s *GeohashService) Decode(ctx context.Context, hash string) (*models.Cell, error) {
	cell, err := cellOf(hash)
	if err != nil {
		return nil, fmt.Errorf("service: failed to decode geohash: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("geohash", cell.Geohash).
		Float64("lat", cell.Center.Latitude).
		Float64("lon", cell.Center.Longitude).
		Msg("decoded geohash")

	return cell, nil
}

// Adjacent returns the cell next to hash in one of the directions n, e, s or w
func (s *GeohashService) Adjacent(ctx context.Context, hash, direction string) (*models.Cell, error) {
	next, err := geohash.Adjacent(hash, geohash.Direction(direction))
	if err != nil {
		return nil, fmt.Errorf("service: failed to find adjacent cell: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("geohash", hash).
		Str("direction", direction).
		Str("adjacent", next).
		Msg("found adjacent cell")

	return cellOf(next)
}

// Neighbours returns the eight cells surrounding hash
func (s *GeohashService) Neighbours(ctx context.Context, hash string) (*models.Neighbourhood, error) {
	ns, err := geohash.Neighbours(hash)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find neighbours: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("geohash", hash).
		Msg("found neighbours")

	return &models.Neighbourhood{Geohash: strings.ToLower(hash), Neighbours: ns}, nil
}

func cellOf(hash string) (*models.Cell, error) {
	box, err := geohash.Bounds(hash)
	if err != nil {
		return nil, err
	}

	center := box.Center()
	return &models.Cell{
		Geohash:   strings.ToLower(hash),
		Precision: len(hash),
		Center: models.Point{
			Latitude:  center.Lat,
			Longitude: center.Lon,
		},
		LatitudeError:  box.LatError(),
		LongitudeError: box.LonError(),
	}, nil
}
