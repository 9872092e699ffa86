package customer

import (
	"time"
)

// Customer represents a detailing customer. Rows are created or updated by the
// booking flow via an upsert keyed on email and are never deleted.
type Customer struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid     string `gorm:"type:varchar(36);not null;unique" json:"uuid"`
	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone    string `gorm:"type:varchar(20);not null" json:"phone"`

	// SMS reminder opt-in. SmsConsentDate is recorded for compliance and is
	// only set when the flag is true.
	SmsConsent     bool       `gorm:"type:bool;default:false" json:"sms_consent"`
	SmsConsentDate *time.Time `json:"sms_consent_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
