package models

import "time"

type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"unique;not null" json:"email"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	VehicleNumber string    `json:"vehicleNumber"`
	Picture       string    `json:"picture"`
	Provider      string    `json:"provider"`
	Orders        []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProfileIncomplete reports whether the user still has to fill in the
// contact details required before checkout: a 10-digit phone number
// and a vehicle number of at least 8 characters. Both are optional at
// account creation and only enforced when checkout is attempted.
func (u *User) ProfileIncomplete() bool {
	if len(u.Phone) != 10 {
		return true
	}
	if len(u.VehicleNumber) < 8 {
		return true
	}
	return false
}
