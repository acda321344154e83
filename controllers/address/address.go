package addressControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/address"
)

// GET /address/resolve?lat=&lng=
//
// Missing coordinates fall back to the map's default centre.
func ResolveAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, err := coordinate(c.Query("lat"), address.DefaultLat)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude", "field": "lat"})
			return
		}
		lng, err := coordinate(c.Query("lng"), address.DefaultLng)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude", "field": "lng"})
			return
		}

		c.JSON(http.StatusOK, address.Resolve(lat, lng))
	}
}

func coordinate(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}
