package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SenderRole - роль автора сообщения в чате
type SenderRole string

const (
	SenderVictim  SenderRole = "victim"
	SenderOfficer SenderRole = "officer"
)

// Valid проверяет, что роль отправителя известна
func (r SenderRole) Valid() bool {
	return r == SenderVictim || r == SenderOfficer
}

type ChatRoom struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	OfficerID string    `json:"officerId"`
	VictimID  string    `json:"victimId"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

type Message struct {
	Seq        int64      `json:"seq"`
	SenderRole SenderRole `json:"sender"`
	Text       string     `json:"text"`
	Timestamp  time.Time  `json:"timestamp"`
}

const roomKeySeparator = "_"

// RoomKey строит детерминированный ключ комнаты для пары офицер-жертва
func RoomKey(officerID, victimID string) string {
	return officerID + roomKeySeparator + victimID
}

// ValidateRoomPair проверяет, что пара однозначно кодируется в ключ:
// id не пустые и не содержат разделителя
func ValidateRoomPair(officerID, victimID string) error {
	if officerID == "" || victimID == "" {
		return NewValidationError("officer and victim ids are required")
	}
	if strings.Contains(officerID, roomKeySeparator) || strings.Contains(victimID, roomKeySeparator) {
		return NewValidationError("participant ids must not contain %q", roomKeySeparator)
	}
	return nil
}

// ParseRoomKey разбирает ключ вида "<officerId>_<victimId>", разделитель ровно один
func ParseRoomKey(key string) (officerID, victimID string, err error) {
	if strings.Count(key, roomKeySeparator) != 1 {
		return "", "", NewValidationError("malformed room key %q", key)
	}
	officerID, victimID, _ = strings.Cut(key, roomKeySeparator)
	if officerID == "" || victimID == "" {
		return "", "", NewValidationError("malformed room key %q", key)
	}
	return officerID, victimID, nil
}
