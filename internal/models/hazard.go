package models

import (
	"time"

	"github.com/google/uuid"
)

// Известные категории опасностей. Набор открытый: хранилище принимает любую строку.
const (
	TypePothole     = "pothole"
	TypeStopSign    = "stop sign"
	TypeRoadClosure = "road closure"
	TypeDebris      = "debris"
	TypeOther       = "other"
)

// Источники отчётов: пользователь или автоматическая камера.
const (
	SourceUser   = "user"
	SourceCamera = "camera"
)

type Hazard struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Source    string    `json:"source"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
