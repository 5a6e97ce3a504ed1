package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/NaomiMeseret/Employee-shift-management/pkg/utils"
)

// Employee lifecycle statuses
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on leave"
)

// Employee represents a worker directory record, including credentials and
// lifecycle status. EmployeeID is assigned externally and is the key every
// API operation uses; the numeric primary key stays internal.
type Employee struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	EmployeeID     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Email          string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	ProfilePicture string    `gorm:"type:varchar(255);default:'default.jpg'" json:"profilePicture"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone"`
	Position       string    `gorm:"type:varchar(50)" json:"position"`
	Status         string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsAdmin        bool      `gorm:"default:false" json:"isAdmin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeforeSave is a GORM hook that hashes the password if a plain text value
// was set. Values carrying a bcrypt version marker are already hashed.
func (e *Employee) BeforeSave(tx *gorm.DB) error {
	if e.Password != "" && !utils.IsHashed(e.Password) {
		hashedPassword, err := utils.HashPassword(e.Password)
		if err != nil {
			return err
		}
		e.Password = hashedPassword
	}
	return nil
}

// StatusView is the projection served by the /status endpoints
type StatusView struct {
	Name   string `json:"name"`
	ID     string `json:"id"`
	Status string `json:"status"`
}

// StatusView converts the employee to its status projection
func (e *Employee) StatusView() StatusView {
	return StatusView{Name: e.Name, ID: e.EmployeeID, Status: e.Status}
}
