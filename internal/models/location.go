package models

import (
	"time"
)

// LocationFix представляет последнюю опубликованную координату сеанса
type LocationFix struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ReportedAt time.Time `json:"reported_at"`
}
