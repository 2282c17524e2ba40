package models

// BrandCount is one row of the count-by-brand statistic.
type BrandCount struct {
	Brand string `json:"brand"`
	Count int64  `json:"count"`
}

// TypeCount is one row of the count-by-type statistic.
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// DecadeCount is one row of the count-by-decade statistic.
// Decade is the lower bound of the bucket, e.g. 1950 for 1950-1959.
type DecadeCount struct {
	Decade int   `json:"decade"`
	Count  int64 `json:"count"`
}

// ValueSummary aggregates the estimated value across the whole collection.
// Cameras without an estimated value are excluded from the total and from
// the average's denominator; CamerasCounted reports how many were included.
type ValueSummary struct {
	TotalValue     float64 `json:"total_value"`
	AverageValue   float64 `json:"average_value"`
	CamerasCounted int64   `json:"cameras_counted"`
}
