package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	c.ObserveConversion(ResultOK, 3*time.Microsecond)
	c.ObserveConversion(ResultOK, time.Microsecond)
	c.ObserveConversion(ResultNonFinite, time.Microsecond)
	c.ObserveArgumentError(KindUsage)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"conversions ok", testutil.ToFloat64(c.Conversions.WithLabelValues(ResultOK)), 2},
		{"conversions non_finite", testutil.ToFloat64(c.Conversions.WithLabelValues(ResultNonFinite)), 1},
		{"usage errors", testutil.ToFloat64(c.ArgumentErrors.WithLabelValues(KindUsage)), 1},
		{"parse errors", testutil.ToFloat64(c.ArgumentErrors.WithLabelValues(KindParse)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if n := testutil.CollectAndCount(c.ConversionDuration); n != 1 {
		t.Errorf("duration histogram series = %d, want 1", n)
	}
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewCollector(reg); err != nil {
		t.Fatalf("first NewCollector: %v", err)
	}
	if _, err := NewCollector(reg); err == nil {
		t.Fatal("second NewCollector on the same registry succeeded, want error")
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.ObserveConversion(ResultOK, time.Second)
	c.ObserveArgumentError(KindParse)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	c.ObserveArgumentError(KindParse)

	path := filepath.Join(t.TempDir(), "sez2ecef.prom")
	if err := c.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read metrics file: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`sez2ecef_argument_errors_total{kind="parse"} 1`,
		`sez2ecef_argument_errors_total{kind="usage"} 0`,
		`sez2ecef_conversions_total{result="ok"} 0`,
		"sez2ecef_conversion_duration_seconds_count 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics file missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	path := filepath.Join(t.TempDir(), "missing", "sez2ecef.prom")
	if err := c.WriteTextfile(path); err == nil {
		t.Error("WriteTextfile into a missing directory succeeded, want error")
	}
}
