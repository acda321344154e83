// Package address turns map coordinates into a display address. It is a
// stand-in for reverse geocoding: the result is plausible Damascus text
// derived from the numbers alone, never a real location lookup.
package address

import (
	"fmt"
	"math"
)

// Map centre offered to clients before the shopper picks a point.
const (
	DefaultLat = 33.5138
	DefaultLng = 36.2765
)

const (
	city      = "Damascus"
	country   = "Syria"
	buildings = 50
)

var streets = []string{
	"Al-Maliki Street", "Al-Hamra Street", "Al-Mazzeh Street",
	"Al-Shahbandar Street", "Al-Jalaa Street", "Al-Qasr Street",
	"Al-Baramkeh Street", "Al-Salihiyah Street", "Al-Midan Street",
	"Al-Kassa Street", "Al-Jisr Al-Abyad Street", "Al-Mezzeh Highway",
}

var districts = []string{
	"Al-Mazzeh", "Al-Maliki", "Al-Hamra", "Al-Shahbandar",
	"Al-Salihiyah", "Al-Midan", "Al-Kassa", "Al-Baramkeh",
	"Al-Jisr Al-Abyad", "Al-Qanawat", "Al-Qadam", "Al-Sayyida Zainab",
}

type Address struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Building  int     `json:"building"`
	Street    string  `json:"street"`
	District  string  `json:"district"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Formatted string  `json:"address"`
}

// Resolve is total and deterministic: the same pair always gives the same
// address. Non-finite input resolves like the origin.
func Resolve(lat, lng float64) Address {
	h := coordHash(lat, lng)

	a := Address{
		Lat:      lat,
		Lng:      lng,
		Building: wrap(h, buildings) + 1,
		Street:   streets[wrap(h, len(streets))],
		District: districts[wrap(floorDiv(h, 100), len(districts))],
		City:     city,
		Country:  country,
	}
	a.Formatted = fmt.Sprintf("%d %s, %s, %s, %s", a.Building, a.Street, a.District, a.City, a.Country)
	return a
}

// coordHash is floor((lat*1000 + lng*1000) rem 10000) where the remainder
// keeps the sign of the dividend.
func coordHash(lat, lng float64) int {
	sum := lat*1000 + lng*1000
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0
	}
	return int(math.Floor(math.Mod(sum, 10000)))
}

func floorDiv(a, b int) int {
	return int(math.Floor(float64(a) / float64(b)))
}

// wrap maps any integer, negative ones included, into [0, n).
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
