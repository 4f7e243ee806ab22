package domain

import "math"

// earthRadiusKM is the spherical-earth radius used for all distances.
const earthRadiusKM = 6371

// HaversineKM returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	return haversineFromRadians(radians(lat1), radians(lon1), radians(lat2), radians(lon2))
}

// haversineFromRadians is the inner distance kernel. The matcher precomputes
// candidate radians once so the double loop does not re-convert per pair.
func haversineFromRadians(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKM * 2 * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
