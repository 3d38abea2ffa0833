package forecast

import (
	"testing"
	"time"
)

func TestResolveCurrentAbsent(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	for _, samples := range [][]Sample{nil, {}} {
		status := ResolveCurrent(now, samples)
		if status.Band != BandUnknown {
			t.Errorf("band = %s, want %s", status.Band, BandUnknown)
		}
		if status.Pressure != 100 {
			t.Errorf("pressure = %v, want sentinel 100", status.Pressure)
		}
		if status.IsFavorable {
			t.Error("isFavorable = true, want false")
		}
		if status.Timestamp != "" {
			t.Errorf("timestamp = %q, want empty", status.Timestamp)
		}
	}
}

func TestResolveCurrentNearest(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 7, 0, 0, time.UTC)
	samples := []Sample{
		{Date: "2025-01-15T10:00:00Z", Pressure: 10},
		{Date: "2025-01-15T10:05:00Z", Pressure: -55},
		{Date: "2025-01-15T10:15:00Z", Pressure: 80},
	}

	status := ResolveCurrent(now, samples)
	if status.Timestamp != "2025-01-15T10:05:00Z" {
		t.Fatalf("selected %s, want the 10:05 sample", status.Timestamp)
	}
	if status.Band != BandGreen {
		t.Errorf("band = %s, want %s", status.Band, BandGreen)
	}
	if !status.IsFavorable {
		t.Error("isFavorable = false, want true")
	}
	if status.Pressure != -55 {
		t.Errorf("pressure = %v, want -55", status.Pressure)
	}
}

// TestResolveCurrentEquidistantTie verifies the first-seen sample wins when
// now lies exactly between two samples.
func TestResolveCurrentEquidistantTie(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 5, 0, 0, time.UTC)
	samples := []Sample{
		{Date: "2025-01-15T10:00:00Z", Pressure: -40},
		{Date: "2025-01-15T10:10:00Z", Pressure: 40},
	}

	status := ResolveCurrent(now, samples)
	if status.Timestamp != "2025-01-15T10:00:00Z" {
		t.Errorf("selected %s, want the earlier 10:00 sample", status.Timestamp)
	}
}

func TestResolveCurrentSkipsUnparseable(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	samples := []Sample{
		{Date: "garbage", Pressure: -90},
		{Date: "2025-01-15T11:00:00Z", Pressure: 45},
	}

	status := ResolveCurrent(now, samples)
	if status.Timestamp != "2025-01-15T11:00:00Z" {
		t.Fatalf("selected %s, want the parseable 11:00 sample", status.Timestamp)
	}
	if status.Band != BandRed {
		t.Errorf("band = %s, want %s", status.Band, BandRed)
	}

	// With only unparseable samples the status falls back to unknown.
	status = ResolveCurrent(now, samples[:1])
	if status.Band != BandUnknown || status.Pressure != 100 {
		t.Errorf("all-unparseable input gave %+v, want unknown sentinel", status)
	}
}

func TestResolveCurrentColorFallback(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	withColor := []Sample{{Date: "2025-01-15T10:00:00Z", Pressure: -40, Color: "#00ff00"}}
	if got := ResolveCurrent(now, withColor).Color; got != "#00ff00" {
		t.Errorf("color = %q, want provider color kept", got)
	}

	withoutColor := []Sample{{Date: "2025-01-15T10:00:00Z", Pressure: 15}}
	if got := ResolveCurrent(now, withoutColor).Color; got != string(BandOrange) {
		t.Errorf("color = %q, want classified %q", got, BandOrange)
	}
}
