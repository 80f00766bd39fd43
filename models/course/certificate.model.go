package course

import "time"

// Certificate is an issued proof of course completion. At most one per
// (user_id, course_id); the cert UID is globally unique and never changes.
type Certificate struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_certificate_user_course;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_certificate_user_course;not null"`
	CertUID   string    `json:"cert_uid" gorm:"uniqueIndex;size:64;not null"`
	CertURL   string    `json:"cert_url" gorm:"type:text"`
	IssuedAt  time.Time `json:"issued_at"`
	CreatedAt time.Time `json:"created_at"`
}
