package courseService

import (
	"errors"
	"time"

	courseModels "skillup/models/course"

	"gorm.io/gorm"
)

// ProgressService is the durable per-(user, lesson) completion ledger.
type ProgressService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db, catalog: NewCatalogService(db)}
}

// MarkComplete records that the user finished a lesson. The lesson's owning
// course must have an active enrollment for the user. Marking an already
// completed lesson is a no-op that returns the existing record unchanged, so
// duplicate and concurrent requests converge on the same outcome.
func (s *ProgressService) MarkComplete(userID, lessonID uint) (*courseModels.Progress, error) {
	courseID, err := s.catalog.GetLessonOwningCourse(lessonID)
	if err != nil {
		return nil, err
	}

	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	var progress courseModels.Progress
	err = s.db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err == nil {
		if progress.Completed {
			return &progress, nil
		}
		now := time.Now()
		progress.Completed = true
		progress.CompletedAt = &now
		if err := s.db.Save(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	progress = courseModels.Progress{
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   true,
		CompletedAt: &now,
	}
	if err := s.db.Create(&progress).Error; err != nil {
		// A concurrent request inserted the row first; its outcome is ours.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
				First(&progress).Error; err != nil {
				return nil, err
			}
			return &progress, nil
		}
		return nil, err
	}

	return &progress, nil
}

// GetCompletionMap bulk-resolves completion state for a lesson ID set. Lessons
// with no ledger row are reported as not completed.
func (s *ProgressService) GetCompletionMap(userID uint, lessonIDs []uint) (map[uint]bool, error) {
	completion := make(map[uint]bool, len(lessonIDs))
	for _, id := range lessonIDs {
		completion[id] = false
	}
	if len(lessonIDs) == 0 {
		return completion, nil
	}

	var records []courseModels.Progress
	if err := s.db.Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
		Find(&records).Error; err != nil {
		return nil, err
	}
	for _, record := range records {
		completion[record.LessonID] = record.Completed
	}

	return completion, nil
}

// DeleteForCourse removes the user's ledger rows for the given lesson set.
// Called from the unenroll cascade with the course's own lessons only, inside
// the caller's transaction.
func (s *ProgressService) DeleteForCourse(tx *gorm.DB, userID uint, lessonIDs []uint) error {
	if len(lessonIDs) == 0 {
		return nil
	}
	return tx.Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
		Delete(&courseModels.Progress{}).Error
}
