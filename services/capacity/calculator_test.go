package capacity

import (
	"testing"
	"time"

	"bagdrop/models"
)

func TestEvaluate_UnlimitedAlwaysAvailable(t *testing.T) {
	for _, slots := range []int{0, -3} {
		for _, load := range []int{0, 50, 10000} {
			res := Evaluate(FromSlots(slots), load, 7)
			if !res.Unlimited || !res.Available {
				t.Fatalf("slots=%d load=%d: expected unlimited and available, got %+v", slots, load, res)
			}
			if res.LoadPercentage != 0 {
				t.Fatalf("slots=%d load=%d: expected loadPercentage 0, got %d", slots, load, res.LoadPercentage)
			}
			if res.BufferCeiling != 0 {
				t.Fatalf("expected no buffer ceiling for unlimited, got %d", res.BufferCeiling)
			}
		}
	}
}

func TestBounded_NonPositiveIsUnlimited(t *testing.T) {
	for _, n := range []int{0, -1} {
		c := Bounded(n)
		if !c.IsUnlimited() {
			t.Fatalf("Bounded(%d): expected unlimited, got %+v", n, c)
		}
		res := Evaluate(c, 3, 1)
		if !res.Unlimited || !res.Available || res.LoadPercentage != 0 || res.Status != models.LoadAvailable {
			t.Fatalf("Bounded(%d): unexpected result %+v", n, res)
		}
	}
}

func TestBufferCeiling(t *testing.T) {
	cases := map[int]int{1: 0, 9: 8, 10: 9, 15: 13, 20: 18, 30: 27, 99: 89, 100: 90}
	for slots, want := range cases {
		if got := Bounded(slots).BufferCeiling(); got != want {
			t.Errorf("BufferCeiling(%d) = %d, want %d", slots, got, want)
		}
	}
	if Unlimited().BufferCeiling() != 0 {
		t.Error("expected unlimited buffer ceiling 0")
	}
}

func TestEvaluate_ProjectedLoadOverBufferIsRejected(t *testing.T) {
	res := Evaluate(Bounded(20), 16, 3)
	if res.BufferCeiling != 18 {
		t.Fatalf("expected buffer 18, got %d", res.BufferCeiling)
	}
	if res.ProjectedLoad != 19 {
		t.Fatalf("expected projected 19, got %d", res.ProjectedLoad)
	}
	if res.Available {
		t.Fatal("expected 19 > 18 to be unavailable")
	}
}

func TestEvaluate_ProjectedLoadAtBufferIsAccepted(t *testing.T) {
	res := Evaluate(Bounded(20), 16, 2)
	if !res.Available {
		t.Fatalf("expected projected load equal to buffer to be accepted, got %+v", res)
	}
	if res.Remaining != 2 {
		t.Fatalf("expected 2 remaining, got %d", res.Remaining)
	}
}

func TestEvaluate_TierIndependentOfBuffer(t *testing.T) {
	// 87% load is critical, but one more bag still fits under the 90% buffer.
	res := Evaluate(Bounded(100), 87, 1)
	if res.Status != models.LoadCritical {
		t.Fatalf("expected critical, got %s", res.Status)
	}
	if !res.Available {
		t.Fatal("expected request under the buffer to be accepted")
	}
}

func TestClassifyLoad_Boundaries(t *testing.T) {
	cases := []struct {
		pct  int
		want models.LoadStatus
	}{
		{100, models.LoadFull},
		{95, models.LoadFull},
		{94, models.LoadCritical},
		{85, models.LoadCritical},
		{84, models.LoadLimited},
		{60, models.LoadLimited},
		{59, models.LoadAvailable},
		{0, models.LoadAvailable},
	}
	for _, c := range cases {
		if got := ClassifyLoad(c.pct); got != c.want {
			t.Errorf("ClassifyLoad(%d) = %s, want %s", c.pct, got, c.want)
		}
	}
}

func TestLoadPercentage_RoundsHalfUp(t *testing.T) {
	// 1/8 = 12.5% rounds to 13; 1/3 = 33.3% rounds to 33.
	if got := Evaluate(Bounded(8), 1, 1).LoadPercentage; got != 13 {
		t.Errorf("expected 13, got %d", got)
	}
	if got := Evaluate(Bounded(3), 1, 1).LoadPercentage; got != 33 {
		t.Errorf("expected 33, got %d", got)
	}
}

func TestOverlaps_ClosedIntervals(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	req := Window{DropOff: base, PickUp: base.Add(4 * time.Hour)}

	cases := []struct {
		name string
		w    Window
		want bool
	}{
		{"ends exactly at request start", Window{base.Add(-2 * time.Hour), base}, true},
		{"starts exactly at request end", Window{base.Add(4 * time.Hour), base.Add(6 * time.Hour)}, true},
		{"inside", Window{base.Add(time.Hour), base.Add(2 * time.Hour)}, true},
		{"covers", Window{base.Add(-time.Hour), base.Add(5 * time.Hour)}, true},
		{"before", Window{base.Add(-3 * time.Hour), base.Add(-time.Minute)}, false},
		{"after", Window{base.Add(4*time.Hour + time.Minute), base.Add(8 * time.Hour)}, false},
	}
	for _, c := range cases {
		if got := Overlaps(c.w, req); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSumLoad_CountsOnlyConfirmedOverlapsAtStation(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	w := Window{DropOff: base, PickUp: base.Add(4 * time.Hour)}

	reservations := []models.Reservation{
		{StationID: "a", DropOff: base.Add(-2 * time.Hour), PickUp: base, Quantity: 2, Status: models.ReservationStatusConfirmed},
		{StationID: "a", DropOff: base.Add(time.Hour), PickUp: base.Add(2 * time.Hour), Quantity: 3, Status: models.ReservationStatusConfirmed},
		{StationID: "a", DropOff: base.Add(time.Hour), PickUp: base.Add(2 * time.Hour), Quantity: 5, Status: models.ReservationStatusPending},
		{StationID: "a", DropOff: base.Add(5 * time.Hour), PickUp: base.Add(6 * time.Hour), Quantity: 7, Status: models.ReservationStatusConfirmed},
		{StationID: "b", DropOff: base, PickUp: base.Add(time.Hour), Quantity: 11, Status: models.ReservationStatusConfirmed},
	}
	if got := SumLoad(reservations, "a", w); got != 5 {
		t.Fatalf("expected load 5, got %d", got)
	}
}
