package dto

type TypeBreakdown struct {
	DonationType string  `json:"donation_type"`
	Total        float64 `json:"total"`
	Count        int     `json:"count"`
}

type MonthReport struct {
	Month     string          `json:"month"`
	Total     float64         `json:"total"`
	Count     int             `json:"count"`
	Breakdown []TypeBreakdown `json:"breakdown"`
}

type YearReportResponse struct {
	Year   int           `json:"year"`
	Total  float64       `json:"total"`
	Count  int           `json:"count"`
	Months []MonthReport `json:"months"`
}
