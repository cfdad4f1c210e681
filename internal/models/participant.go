package models

import "time"

// Role - пространство имён участника
type Role string

const (
	RoleVictim  Role = "victim"
	RoleOfficer Role = "officer"
)

// Identity - логическая личность участника. Идентификаторы жертв и офицеров
// живут в разных пространствах имён, поэтому ключом служит пара {Role, ID}.
type Identity struct {
	Role Role   `json:"role"`
	ID   string `json:"id"`
}

func Victim(id string) Identity  { return Identity{Role: RoleVictim, ID: id} }
func Officer(id string) Identity { return Identity{Role: RoleOfficer, ID: id} }

func (i Identity) String() string {
	return string(i.Role) + ":" + i.ID
}

// Participant - профиль жертвы или офицера, нужный ядру только для подписей
type Participant struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
