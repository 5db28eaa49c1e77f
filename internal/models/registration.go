package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration is one submitted community-registration record.
// SerialNumber is a human-readable counter distinct from the UUID primary key;
// the admin search treats purely numeric input as an exact match against it.
type Registration struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SerialNumber  int64      `gorm:"autoIncrement;uniqueIndex" json:"serial_number"`
	FirstName     string     `gorm:"size:100;not null" json:"first_name"`
	MiddleName    string     `gorm:"size:100;not null" json:"middle_name"`
	LastName      string     `gorm:"size:100;not null" json:"last_name"`
	Gender        string     `gorm:"size:10;not null;index" json:"gender"`
	MaritalStatus *string    `gorm:"size:20" json:"marital_status"`
	Birthday      *time.Time `gorm:"type:date" json:"birthday"`
	Street        string     `gorm:"size:255" json:"street"`
	City          string     `gorm:"size:100;index" json:"city"`
	State         string     `gorm:"size:100" json:"state"`
	ZipCode       string     `gorm:"size:20" json:"zip_code"`
	Phone         string     `gorm:"size:30" json:"phone"`
	RelativePhone *string    `gorm:"size:30" json:"relative_phone"`
	NativePlace   string     `gorm:"size:100" json:"native_place"`
	PhotoBucket   string     `gorm:"size:255" json:"photo_bucket"`
	PhotoPath     string     `gorm:"size:512" json:"photo_path"`
	Verified      bool       `gorm:"default:false;index" json:"verified"`
	CreatedAt     time.Time  `json:"created_at"`
}

const (
	GenderMale   = "male"
	GenderFemale = "female"

	MaritalStatusMarried   = "married"
	MaritalStatusUnmarried = "unmarried"
)
