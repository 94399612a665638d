package model

import "time"

type DensityStats struct {
	Measures  int     `json:"measures"`
	MeanNPM   float64 `json:"mean_npm"`
	StdDevNPM float64 `json:"std_dev_npm"`
	PeakNPM   int     `json:"peak_npm"`
	PeakStart int     `json:"peak_start"`
}

// Report is the stored and served summary of one chart analysis.
type Report struct {
	ID         string    `json:"id"`
	Checksum   string    `json:"checksum"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	Version    string    `json:"version"`
	KeyCount   int       `json:"key_count"`
	AverageNPM float64   `json:"average_npm"`
	CreatedAt  time.Time `json:"created_at"`

	Density            DensityStats   `json:"density"`
	Scores             []PatternScore `json:"scores"`
	Dominant           []PatternScore `json:"dominant"`
	DominantCategories []PatternScore `json:"dominant_categories"`
}

type ReportListResponse struct {
	Reports []Report `json:"reports"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
