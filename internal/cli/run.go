package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/star/sez2ecef/internal/metrics"
	"github.com/star/sez2ecef/internal/transform"
)

// Exit statuses returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Options configures Run. The zero value converts on WGS-84 without
// logging or metrics.
type Options struct {
	Prog      string
	Logger    *slog.Logger
	Ellipsoid *transform.Ellipsoid
	Metrics   *metrics.Collector
}

// Run converts the SEZ offset described by args and writes r_x_km, r_y_km
// and r_z_km to stdout, one per line. It returns the process exit status.
func Run(ctx context.Context, args []string, stdout io.Writer, opts Options) int {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	prog := opts.Prog
	if prog == "" {
		prog = "sez2ecef"
	}
	ellipsoid := transform.WGS84
	if opts.Ellipsoid != nil {
		ellipsoid = *opts.Ellipsoid
	}

	ground, offset, err := ParseArgs(args)
	if err != nil {
		var usageErr *UsageError
		var parseErr *ParseError
		switch {
		case errors.As(err, &usageErr):
			opts.Metrics.ObserveArgumentError(metrics.KindUsage)
			logger.WarnContext(ctx, "wrong number of arguments", "error", err, "got", usageErr.Got)
			fmt.Fprint(stdout, Usage(prog))
		case errors.As(err, &parseErr):
			opts.Metrics.ObserveArgumentError(metrics.KindParse)
			logger.WarnContext(ctx, "invalid argument", "error", err, "argument", parseErr.Name)
			fmt.Fprintf(stdout, "error: %v\n", err)
			fmt.Fprint(stdout, Usage(prog))
		default:
			logger.ErrorContext(ctx, "argument parsing failed", "error", err)
			return ExitError
		}
		return ExitUsage
	}

	start := time.Now()
	r := transform.SEZToECEF(ground, offset, ellipsoid)
	elapsed := time.Since(start)

	result := metrics.ResultOK
	if !r.IsFinite() {
		result = metrics.ResultNonFinite
		logger.WarnContext(ctx, "conversion produced a non-finite position",
			"semi_major_axis_km", ellipsoid.SemiMajorAxisKm,
			"eccentricity", ellipsoid.Eccentricity,
		)
	}
	opts.Metrics.ObserveConversion(result, elapsed)

	logger.DebugContext(ctx, "converted SEZ to ECEF",
		"lat_deg", ground.LatDeg,
		"lon_deg", ground.LonDeg,
		"hae_km", ground.HeightKm,
		"south_km", offset.SouthKm,
		"east_km", offset.EastKm,
		"zenith_km", offset.ZenithKm,
		"x_km", r.X,
		"y_km", r.Y,
		"z_km", r.Z,
		"duration_ns", elapsed.Nanoseconds(),
	)

	for _, v := range [3]float64{r.X, r.Y, r.Z} {
		if _, err := fmt.Fprintln(stdout, FormatKm(v)); err != nil {
			logger.ErrorContext(ctx, "failed to write result", "error", err)
			return ExitError
		}
	}
	return ExitOK
}

// FormatKm formats v with the fewest digits that round-trip to the same float64.
func FormatKm(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
