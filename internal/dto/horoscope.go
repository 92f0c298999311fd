package dto

// HoroscopeResponse represents a single daily horoscope
type HoroscopeResponse struct {
	ID         string `json:"id"`
	ZodiacSign string `json:"zodiacSign" example:"Taurus"`
	Date       string `json:"date" example:"2025-06-01"`
	Content    string `json:"content"`
	Category   string `json:"category" example:"general"`
	Mood       string `json:"mood" example:"positive"`
}

// TodayResponse wraps the horoscope returned by the today endpoint
type TodayResponse struct {
	Horoscope HoroscopeResponse `json:"horoscope"`
}

// HistoryEntry is one day in the trailing history window
type HistoryEntry struct {
	Date      string            `json:"date" example:"2025-06-01"`
	Horoscope HoroscopeResponse `json:"horoscope"`
	Viewed    bool              `json:"viewed"`
}

// HistoryResponse wraps the trailing history window
type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}
