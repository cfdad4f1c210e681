package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateHelpRequestRequest DTO для создания заявки о помощи
// @Description DTO для создания заявки о помощи
type CreateHelpRequestRequest struct {
	RequesterID string   `json:"requesterId" validate:"required,max=64,excludes=_"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
}

// AcceptHelpRequestRequest DTO для принятия заявки офицером
// @Description DTO для принятия заявки офицером
type AcceptHelpRequestRequest struct {
	RequestID string `json:"requestId" validate:"required,uuid"`
	OfficerID string `json:"officerId" validate:"required,max=64,excludes=_"`
}

// ReleaseHelpRequestRequest DTO для освобождения заявки
// @Description DTO для освобождения заявки
type ReleaseHelpRequestRequest struct {
	RequestID string `json:"requestId" validate:"required,uuid"`
}

// AnonymousSOSRequest DTO для анонимного сигнала
// @Description DTO для анонимного сигнала
type AnonymousSOSRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HelpRequestResponse DTO для ответа с заявкой
// @Description DTO для ответа с заявкой
type HelpRequestResponse struct {
	ID                uuid.UUID        `json:"id"`
	RequesterID       string           `json:"requesterId"`
	RequesterName     string           `json:"requesterName,omitempty"`
	Location          LocationResponse `json:"location"`
	Status            string           `json:"status"`
	AssignedOfficerID *string          `json:"assignedOfficerId,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// OfficerResponse DTO с именем офицера
// @Description DTO с именем офицера
type OfficerResponse struct {
	Name string `json:"name"`
}

// AnonymousSOSResponse DTO для ответа с анонимным сигналом
// @Description DTO для ответа с анонимным сигналом
type AnonymousSOSResponse struct {
	ID        uuid.UUID        `json:"id"`
	Location  LocationResponse `json:"location"`
	CreatedAt time.Time        `json:"createdAt"`
}
