package transform

import "math"

// GeodeticPosition is a ground station location: latitude and longitude in
// degrees, height above the ellipsoid in kilometres.
//
// Longitude is not normalised; any real value wraps through the trig functions.
type GeodeticPosition struct {
	LatDeg, LonDeg float64
	HeightKm       float64
}

// SEZOffset is a target position relative to a ground station in the
// station's South-East-Zenith tangent frame (km).
type SEZOffset struct {
	SouthKm, EastKm, ZenithKm float64
}

// ECEFPosition is a position in the Earth-Centered Earth-Fixed frame (km).
type ECEFPosition struct {
	X, Y, Z float64
}

// Add returns p + o component-wise.
func (p ECEFPosition) Add(o ECEFPosition) ECEFPosition {
	return ECEFPosition{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Norm returns the distance from the Earth's centre.
func (p ECEFPosition) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// IsFinite reports whether every component is a finite number.
func (p ECEFPosition) IsFinite() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Station holds a ground station in both geodetic and ECEF frames.
// The trig terms and the ECEF position are computed once so that several
// offsets can be converted from the same station.
type Station struct {
	Geodetic       GeodeticPosition
	LatRad, LonRad float64
	ECEF           ECEFPosition

	sinLat, cosLat float64
	sinLon, cosLon float64
}

// NewStation creates a Station on ellipsoid e.
func NewStation(p GeodeticPosition, e Ellipsoid) Station {
	lat := p.LatDeg * math.Pi / 180.0
	lon := p.LonDeg * math.Pi / 180.0

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	sinLon := math.Sin(lon)
	cosLon := math.Cos(lon)

	cE := e.PrimeVerticalRadius(lat)
	sE := cE * (1 - e.EccentricitySquared())

	return Station{
		Geodetic: p,
		LatRad:   lat,
		LonRad:   lon,
		ECEF: ECEFPosition{
			X: (cE + p.HeightKm) * cosLat * cosLon,
			Y: (cE + p.HeightKm) * cosLat * sinLon,
			Z: (sE + p.HeightKm) * sinLat,
		},
		sinLat: sinLat,
		cosLat: cosLat,
		sinLon: sinLon,
		cosLon: cosLon,
	}
}

// Rotate expresses an SEZ offset in ECEF-aligned axes, still relative to
// the station. This is the transpose of the ECEF->SEZ rotation
// R2(90°-lat)·R3(lon).
func (s Station) Rotate(o SEZOffset) ECEFPosition {
	return ECEFPosition{
		X: s.cosLon*s.sinLat*o.SouthKm + s.cosLon*s.cosLat*o.ZenithKm - s.sinLon*o.EastKm,
		Y: s.sinLon*s.sinLat*o.SouthKm + s.sinLon*s.cosLat*o.ZenithKm + s.cosLon*o.EastKm,
		Z: -s.cosLat*o.SouthKm + s.sinLat*o.ZenithKm,
	}
}

// ToECEF returns the absolute ECEF position of a target at offset o from the station.
func (s Station) ToECEF(o SEZOffset) ECEFPosition {
	return s.Rotate(o).Add(s.ECEF)
}

// SEZToECEF converts a target's SEZ offset from a ground station into an
// ECEF position on ellipsoid e.
func SEZToECEF(ground GeodeticPosition, offset SEZOffset, e Ellipsoid) ECEFPosition {
	return NewStation(ground, e).ToECEF(offset)
}
