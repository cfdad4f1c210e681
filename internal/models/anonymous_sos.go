package models

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousSOS - анонимный сигнал бедствия: только координаты и время
type AnonymousSOS struct {
	ID        uuid.UUID `json:"id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}
