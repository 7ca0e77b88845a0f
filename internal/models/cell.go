package models

import "geohash-api/internal/geohash"

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Cell describes a single geohash cell: its hash, its center and how far the center may be from any point inside it.
type Cell struct {
	Geohash        string  `json:"geohash"`
	Precision      int     `json:"precision"`
	Center         Point   `json:"center"`
	LatitudeError  float64 `json:"latitude_error"`
	LongitudeError float64 `json:"longitude_error"`
}

// Neighbourhood is a geohash together with the eight cells around it.
type Neighbourhood struct {
	Geohash    string               `json:"geohash"`
	Neighbours geohash.NeighbourSet `json:"neighbours"`
}
