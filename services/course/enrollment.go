package courseService

import (
	"errors"
	"time"

	"skillup/models"
	courseModels "skillup/models/course"

	"gorm.io/gorm"
)

// EnrollmentService owns enrollment rows: membership, the cached progress
// percentage and the completion date.
type EnrollmentService struct {
	db       *gorm.DB
	catalog  *CatalogService
	progress *ProgressService
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{
		db:       db,
		catalog:  NewCatalogService(db),
		progress: NewProgressService(db),
	}
}

// EnrollmentWithCourse is an enrollment enriched with catalog data for listings.
type EnrollmentWithCourse struct {
	courseModels.Enrollment
	CourseTitle       string `json:"course_title"`
	CourseDescription string `json:"course_description"`
	CourseCategory    string `json:"course_category"`
	InstructorName    string `json:"instructor_name"`
}

// Enroll registers a student in a course. The composite unique index on
// (user_id, course_id) makes the loser of a racing double enroll fail
// deterministically with ErrAlreadyEnrolled.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*courseModels.Enrollment, error) {
	role, err := s.catalog.GetUserRole(userID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleStudent {
		return nil, ErrRoleNotEligible
	}

	exists, err := s.catalog.CourseExists(courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	var existing courseModels.Enrollment
	err = s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Progress:   0.0,
		EnrolledAt: time.Now(),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	return &enrollment, nil
}

// Unenroll removes the enrollment and every ledger row for the course's own
// lesson set, in one transaction. Progress for other courses is untouched.
func (s *EnrollmentService) Unenroll(userID, courseID uint) error {
	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotEnrolled
		}
		return err
	}

	modules, err := s.catalog.GetModulesWithLessons(courseID)
	if err != nil {
		return err
	}
	var lessonIDs []uint
	for _, module := range modules {
		lessonIDs = append(lessonIDs, module.LessonIDs...)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.progress.DeleteForCourse(tx, userID, lessonIDs); err != nil {
			return err
		}
		return tx.Delete(&courseModels.Enrollment{}, enrollment.ID).Error
	})
}

// GetEnrollment looks up the enrollment for a (user, course) pair.
func (s *EnrollmentService) GetEnrollment(userID, courseID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

// IsEnrolled reports whether an enrollment exists for the pair.
func (s *EnrollmentService) IsEnrolled(userID, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RecomputeProgress re-derives the course aggregate from the ledger and the
// current catalog structure, persists it, and sets the completion date on the
// first transition to 100%. Safe to call repeatedly: with an unchanged ledger
// the second call returns identical output and writes the same values.
//
// The check-then-act on CompletionDate runs inside a single transaction so
// concurrent recomputes cannot set it twice; FirstCompletion is true for
// exactly one caller per enrollment lifetime.
func (s *EnrollmentService) RecomputeProgress(userID, courseID uint) (*CourseProgressSummary, error) {
	modules, err := s.catalog.GetModulesWithLessons(courseID)
	if err != nil {
		return nil, err
	}
	var lessonIDs []uint
	for _, module := range modules {
		lessonIDs = append(lessonIDs, module.LessonIDs...)
	}

	completion, err := s.progress.GetCompletionMap(userID, lessonIDs)
	if err != nil {
		return nil, err
	}

	summary := ComputeCourseProgress(modules, completion)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var enrollment courseModels.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).
			First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotEnrolled
			}
			return err
		}

		enrollment.Progress = summary.Percentage
		if summary.Percentage >= 100.0 && enrollment.CompletionDate == nil {
			today := startOfDay(time.Now())
			enrollment.CompletionDate = &today
			summary.FirstCompletion = true
		}

		return tx.Save(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// ListUserEnrollments returns the user's enrollments enriched with course and
// instructor details, newest first. Enrollments whose course was deleted are
// skipped.
func (s *EnrollmentService) ListUserEnrollments(userID uint) ([]EnrollmentWithCourse, error) {
	var enrollments []courseModels.Enrollment
	if err := s.db.Where("user_id = ?", userID).
		Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}

	result := make([]EnrollmentWithCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var c courseModels.Course
		if err := s.db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).
			First(&c).Error; err != nil {
			continue
		}

		var instructor models.User
		instructorName := "Unknown"
		if err := s.db.Select("name").First(&instructor, c.InstructorID).Error; err == nil {
			instructorName = instructor.Name
		}

		result = append(result, EnrollmentWithCourse{
			Enrollment:        enrollment,
			CourseTitle:       c.Title,
			CourseDescription: c.Description,
			CourseCategory:    c.Category,
			InstructorName:    instructorName,
		})
	}

	return result, nil
}

// ListCourseEnrollments returns all enrollments for a course, newest first.
func (s *EnrollmentService) ListCourseEnrollments(courseID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	if err := s.db.Where("course_id = ?", courseID).
		Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// CompletedEnrollments returns the user's enrollments with a completion date set.
func (s *EnrollmentService) CompletedEnrollments(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND completion_date IS NOT NULL", userID).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// InProgressEnrollments returns the user's enrollments not yet completed.
func (s *EnrollmentService) InProgressEnrollments(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND completion_date IS NULL", userID).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// startOfDay truncates a timestamp to date precision. Completion and issue
// dates carry day granularity only.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
