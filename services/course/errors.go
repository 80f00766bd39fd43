package courseService

import "errors"

// Sentinel errors returned by the course services. Controllers match these
// with errors.Is and map them to HTTP statuses; the services themselves never
// talk HTTP.
var (
	// ErrNotFound covers absent users, courses, modules, lessons and enrollments
	// looked up by ID.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyEnrolled is returned when an enrollment for the (user, course)
	// pair already exists, including the loser of a racing double enroll.
	ErrAlreadyEnrolled = errors.New("user is already enrolled in this course")

	// ErrNotEnrolled is returned by operations that require an active
	// enrollment for the acting user.
	ErrNotEnrolled = errors.New("user is not enrolled in this course")

	// ErrRoleNotEligible is returned when the user's role does not permit the
	// action (e.g. a non-student enrolling or earning a certificate).
	ErrRoleNotEligible = errors.New("user role is not eligible for this action")

	// ErrCourseNotCompleted is returned when a certificate is requested before
	// the enrollment reached 100% progress.
	ErrCourseNotCompleted = errors.New("course must be completed first")

	// ErrConflict covers concurrent-write constraint violations that are not
	// resolved idempotently by the operation itself.
	ErrConflict = errors.New("conflicting concurrent update")
)
