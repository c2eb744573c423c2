package overlay

import "math"

// ComputePercentages returns each class's share of the total detected area,
// rounded to two decimals. Area is always bounding-box width times height,
// even when a detection carries a polygon outline; persisted results depend
// on that, so it stays that way. A total area of zero maps every observed
// class to 0 rather than erroring.
func ComputePercentages(detections []Detection) map[string]float64 {
	areas := make(map[string]float64)
	var total float64

	for _, det := range detections {
		area := det.Width * det.Height
		areas[det.Class] += area
		total += area
	}

	percentages := make(map[string]float64, len(areas))
	for class, area := range areas {
		if total == 0 {
			percentages[class] = 0
			continue
		}
		percentages[class] = math.Round(100*area/total*100) / 100
	}

	return percentages
}
