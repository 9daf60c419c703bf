// Package cli implements the sez2ecef command line: argument parsing,
// conversion and result printing.
package cli

import (
	"strconv"
	"strings"

	"github.com/star/sez2ecef/internal/transform"
)

// argNames lists the positional arguments in order, with their help text.
var argNames = []struct {
	name, help string
}{
	{"o_lat_deg", "latitude in degrees of the ground station"},
	{"o_lon_deg", "longitude in degrees of the ground station"},
	{"o_hae_km", "height above ellipsoid in km of the ground station"},
	{"s_km", "south coordinate in km of the object from the ground station"},
	{"e_km", "east coordinate in km of the object from the ground station"},
	{"z_km", "zenith coordinate in km of the object from the ground station"},
}

// ParseArgs parses the six positional arguments
//
//	o_lat_deg o_lon_deg o_hae_km s_km e_km z_km
//
// Arguments are not flags, so negative values such as "-33.9" are accepted.
// A wrong count returns *UsageError before anything is parsed; a malformed
// number returns *ParseError naming the first offending argument.
func ParseArgs(args []string) (transform.GeodeticPosition, transform.SEZOffset, error) {
	if len(args) != len(argNames) {
		return transform.GeodeticPosition{}, transform.SEZOffset{}, &UsageError{Got: len(args)}
	}

	var v [6]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return transform.GeodeticPosition{}, transform.SEZOffset{}, &ParseError{
				Name:  argNames[i].name,
				Value: a,
				Err:   err,
			}
		}
		v[i] = f
	}

	ground := transform.GeodeticPosition{LatDeg: v[0], LonDeg: v[1], HeightKm: v[2]}
	offset := transform.SEZOffset{SouthKm: v[3], EastKm: v[4], ZenithKm: v[5]}
	return ground, offset, nil
}

// Usage returns the help text for the given program name.
func Usage(prog string) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(prog)
	for _, a := range argNames {
		b.WriteString(" ")
		b.WriteString(a.name)
	}
	b.WriteString("\n  Converts SEZ coordinates to ECEF coordinates (WGS-84).\n")
	for _, a := range argNames {
		b.WriteString("  ")
		b.WriteString(a.name)
		b.WriteString(strings.Repeat(" ", 11-len(a.name)))
		b.WriteString(a.help)
		b.WriteString("\n")
	}
	b.WriteString("Output: r_x_km, r_y_km, r_z_km, one per line.\n")
	return b.String()
}
