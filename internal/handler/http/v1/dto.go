package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateHazardRequest DTO для создания отметки об опасности.
// Координаты приходят строками: мобильная форма отправляет текст полей
// как есть, разбор выполняется на сервере.
// @Description DTO для создания отметки об опасности
type CreateHazardRequest struct {
	Type      string `json:"type" validate:"required,min=2,max=255"`
	Latitude  string `json:"latitude" validate:"required"`
	Longitude string `json:"longitude" validate:"required"`
	Source    string `json:"source,omitempty"`
	Note      string `json:"note,omitempty" validate:"max=1000"`
}

// HazardResponse DTO для ответа с информацией об опасности
// @Description DTO для ответа с информацией об опасности
type HazardResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Source    string    `json:"source"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest DTO для входа. Пустое имя допустимо:
// оно будет заменено именем по умолчанию.
// @Description DTO для входа
type LoginRequest struct {
	Username string `json:"username" validate:"max=255"`
}

// SessionResponse DTO для ответа с состоянием сессии
// @Description DTO для ответа с состоянием сессии
type SessionResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	LoggedIn  bool      `json:"logged_in"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LocationPingRequest DTO для публикации координаты устройства.
// Координаты заданы указателями: 0 градусов (экватор, нулевой меридиан) -
// валидное значение, и тег required должен отличать его от отсутствия поля.
// @Description DTO для публикации координаты устройства
type LocationPingRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LatestLocationResponse DTO для ответа с последней координатой.
// Source показывает происхождение: live - опубликованная координата,
// default - координата по умолчанию.
// @Description DTO для ответа с последней координатой
type LatestLocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
	Source    string  `json:"source"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	HazardCount int `json:"hazard_count"`
}
