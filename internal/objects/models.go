package objects

import (
	"time"
)

// Object is a generic managed record with contact details
type Object struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;index"`
	Email     string    `json:"email" gorm:"not null;index"`
	Age       *int      `json:"age"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Object) TableName() string {
	return "objects"
}
