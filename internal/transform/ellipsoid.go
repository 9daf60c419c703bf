// Package transform converts topocentric South-East-Zenith (SEZ) offsets
// measured from a ground station into Earth-Centered Earth-Fixed (ECEF)
// positions on a reference ellipsoid.
//
// All distances are kilometres and all public angles are degrees.
// Reference: Vallado, "Fundamentals of Astrodynamics and Applications", Sec. 3.2 and 4.4.
package transform

import "math"

// Ellipsoid describes a reference ellipsoid by its equatorial radius and
// first eccentricity.
type Ellipsoid struct {
	SemiMajorAxisKm float64
	Eccentricity    float64
}

// WGS84 is the ellipsoid used by the command line tool.
var WGS84 = Ellipsoid{
	SemiMajorAxisKm: 6378.1363,
	Eccentricity:    0.081819221456,
}

// EccentricitySquared returns e².
func (e Ellipsoid) EccentricitySquared() float64 {
	return e.Eccentricity * e.Eccentricity
}

// PrimeVerticalRadius returns the radius of curvature in the prime vertical
// (east-west) at the given geodetic latitude in radians.
//
// Eccentricity must be in [0, 1). Larger values make the radicand negative
// and the result NaN.
func (e Ellipsoid) PrimeVerticalRadius(latRad float64) float64 {
	sinLat := math.Sin(latRad)
	return e.SemiMajorAxisKm / math.Sqrt(1-e.EccentricitySquared()*sinLat*sinLat)
}

// StationECEF returns the ECEF position of a point given in geodetic
// coordinates on this ellipsoid.
func (e Ellipsoid) StationECEF(p GeodeticPosition) ECEFPosition {
	return NewStation(p, e).ECEF
}
