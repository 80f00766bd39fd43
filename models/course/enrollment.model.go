package course

import "time"

// Enrollment tracks a user's membership in a course together with the cached
// aggregate progress. The (user_id, course_id) pair is unique; a racing double
// enroll fails on the index for the loser.
//
// Rows are hard-deleted on unenroll: a gorm soft delete would leave the unique
// key occupied and block re-enrollment.
type Enrollment struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	UserID         uint       `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID       uint       `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	Progress       float64    `json:"progress" gorm:"default:0"` // Completion percentage (0-100)
	CompletionDate *time.Time `json:"completion_date"`           // Set once, on first reaching 100%
	EnrolledAt     time.Time  `json:"enrolled_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
