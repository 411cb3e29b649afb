package capacity

import (
	"math"

	"bagdrop/models"
)

// Tier thresholds on the nominal (unbuffered) load percentage.
const (
	fullThreshold     = 95
	criticalThreshold = 85
	limitedThreshold  = 60
)

// Evaluate decides whether requested more bags fit on top of currentLoad.
// The buffer comparison is authoritative; the status tier is for display only.
func Evaluate(c Capacity, currentLoad, requested int) models.AvailabilityResult {
	res := models.AvailabilityResult{
		CurrentLoad:   currentLoad,
		Requested:     requested,
		ProjectedLoad: currentLoad + requested,
	}

	slots, bounded := c.Slots()
	if !bounded {
		res.Unlimited = true
		res.Available = true
		res.LoadPercentage = 0
		res.Status = models.LoadAvailable
		return res
	}

	res.Capacity = slots
	res.BufferCeiling = c.BufferCeiling()
	res.Available = res.ProjectedLoad <= res.BufferCeiling
	if remaining := res.BufferCeiling - currentLoad; remaining > 0 {
		res.Remaining = remaining
	}
	res.LoadPercentage = loadPercentage(currentLoad, slots)
	res.Status = ClassifyLoad(res.LoadPercentage)
	return res
}

// ClassifyLoad maps a load percentage to its tier; thresholds are inclusive.
func ClassifyLoad(pct int) models.LoadStatus {
	switch {
	case pct >= fullThreshold:
		return models.LoadFull
	case pct >= criticalThreshold:
		return models.LoadCritical
	case pct >= limitedThreshold:
		return models.LoadLimited
	default:
		return models.LoadAvailable
	}
}

// loadPercentage rounds half up, matching how the dashboard displays it.
func loadPercentage(load, slots int) int {
	return int(math.Floor(float64(load)*100/float64(slots) + 0.5))
}
