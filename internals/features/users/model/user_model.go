package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel adalah data identitas (read-only untuk backend ini,
// dimiliki identity provider). Password hanya diisi seeder.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:employee;column:role" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string { return "users" }
