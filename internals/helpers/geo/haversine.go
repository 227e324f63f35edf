package geo

import "math"

// EarthRadiusKm dipakai rumus haversine.
const EarthRadiusKm = 6371.0

// HaversineKm menghitung jarak great-circle (km) antara dua koordinat
// dalam derajat desimal. Input NaN/Inf harus sudah ditolak di hulu.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*(math.Pi/180))*
			math.Cos(lat2*(math.Pi/180))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Round2 membulatkan ke 2 desimal.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
