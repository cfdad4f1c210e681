package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// HelpRequestStatus - состояние заявки о помощи
type HelpRequestStatus string

const (
	StatusPending  HelpRequestStatus = "pending"
	StatusAccepted HelpRequestStatus = "accepted"
	StatusInChat   HelpRequestStatus = "in_chat"
	StatusResolved HelpRequestStatus = "resolved"
)

// Location - координаты, в которых была запрошена помощь
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Validate проверяет, что обе координаты конечны и лежат в допустимых диапазонах
func (l Location) Validate() error {
	if math.IsNaN(l.Latitude) || math.IsInf(l.Latitude, 0) || l.Latitude < -90 || l.Latitude > 90 {
		return NewValidationError("invalid latitude %v", l.Latitude)
	}
	if math.IsNaN(l.Longitude) || math.IsInf(l.Longitude, 0) || l.Longitude < -180 || l.Longitude > 180 {
		return NewValidationError("invalid longitude %v", l.Longitude)
	}
	return nil
}

type HelpRequest struct {
	ID                uuid.UUID         `json:"id"`
	RequesterID       string            `json:"requesterId"`
	RequesterName     string            `json:"requesterName,omitempty"`
	Location          Location          `json:"location"`
	Status            HelpRequestStatus `json:"status"`
	AssignedOfficerID *string           `json:"assignedOfficerId,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// IsAssigned сообщает, закреплён ли за заявкой офицер
func (r *HelpRequest) IsAssigned() bool {
	return r.AssignedOfficerID != nil && *r.AssignedOfficerID != ""
}

// AssignedTo проверяет, что заявка закреплена именно за officerID
func (r *HelpRequest) AssignedTo(officerID string) bool {
	return r.IsAssigned() && *r.AssignedOfficerID == officerID
}

// ReleasePolicy определяет, куда переходит заявка при освобождении офицером.
// Выбирается один раз при старте процесса.
type ReleasePolicy string

const (
	// ReleaseResolve - освобождение завершает заявку (терминальное состояние resolved)
	ReleaseResolve ReleasePolicy = "resolve"
	// ReleaseRequeue - освобождение возвращает заявку в очередь (pending)
	ReleaseRequeue ReleasePolicy = "requeue"
)

// ParseReleasePolicy разбирает значение из конфигурации
func ParseReleasePolicy(value string) (ReleasePolicy, error) {
	switch ReleasePolicy(value) {
	case ReleaseResolve, "":
		return ReleaseResolve, nil
	case ReleaseRequeue:
		return ReleaseRequeue, nil
	}
	return "", NewValidationError("unknown release policy %q", value)
}

// Target возвращает целевой статус перехода release
func (p ReleasePolicy) Target() HelpRequestStatus {
	if p == ReleaseRequeue {
		return StatusPending
	}
	return StatusResolved
}

// ReleasableFrom перечисляет статусы, из которых допустим release
func (p ReleasePolicy) ReleasableFrom() []HelpRequestStatus {
	if p == ReleaseRequeue {
		return []HelpRequestStatus{StatusAccepted, StatusInChat}
	}
	return []HelpRequestStatus{StatusPending, StatusAccepted, StatusInChat}
}

// CanRelease проверяет, допустим ли release из статуса status
func (p ReleasePolicy) CanRelease(status HelpRequestStatus) bool {
	for _, s := range p.ReleasableFrom() {
		if s == status {
			return true
		}
	}
	return false
}
