package courseService

import (
	"testing"

	"skillup/models"
	courseModels "skillup/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, _ := createCourse(t, db, instructorID, 2)

	enrollments := NewEnrollmentService(db)

	enrollment, err := enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, enrollment.Progress)
	assert.Nil(t, enrollment.CompletionDate)

	_, err = enrollments.Enroll(studentID, courseID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestEnrollRequiresStudentRole(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	adminID := createUser(t, db, models.RoleAdmin)
	courseID, _ := createCourse(t, db, instructorID, 1)

	enrollments := NewEnrollmentService(db)

	_, err := enrollments.Enroll(instructorID, courseID)
	assert.ErrorIs(t, err, ErrRoleNotEligible)

	_, err = enrollments.Enroll(adminID, courseID)
	assert.ErrorIs(t, err, ErrRoleNotEligible)
}

func TestEnrollMissingOrInactiveCourse(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, _ := createCourse(t, db, instructorID, 1)

	require.NoError(t, db.Model(&courseModels.Course{}).
		Where("id = ?", courseID).Update("active", false).Error)

	enrollments := NewEnrollmentService(db)

	_, err := enrollments.Enroll(studentID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = enrollments.Enroll(studentID, courseID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnenrollCascadesAndAllowsFreshStart(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, lessonIDs := createCourse(t, db, instructorID, 2)
	otherCourseID, otherLessonIDs := createCourse(t, db, instructorID, 1)

	enrollments := NewEnrollmentService(db)
	ledger := NewProgressService(db)

	_, err := enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)
	_, err = enrollments.Enroll(studentID, otherCourseID)
	require.NoError(t, err)

	_, err = ledger.MarkComplete(studentID, lessonIDs[0])
	require.NoError(t, err)
	_, err = ledger.MarkComplete(studentID, otherLessonIDs[0])
	require.NoError(t, err)

	require.NoError(t, enrollments.Unenroll(studentID, courseID))

	_, err = enrollments.GetEnrollment(studentID, courseID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Ledger rows for the other course survive the cascade
	completion, err := ledger.GetCompletionMap(studentID, otherLessonIDs)
	require.NoError(t, err)
	assert.True(t, completion[otherLessonIDs[0]])

	// Re-enrolling starts from scratch
	enrollment, err := enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, enrollment.Progress)

	completion, err = ledger.GetCompletionMap(studentID, lessonIDs)
	require.NoError(t, err)
	assert.False(t, completion[lessonIDs[0]])
}

func TestUnenrollNotEnrolled(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, _ := createCourse(t, db, instructorID, 1)

	enrollments := NewEnrollmentService(db)

	assert.ErrorIs(t, enrollments.Unenroll(studentID, courseID), ErrNotEnrolled)
}

func TestRecomputeProgressPersistsAggregate(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, lessonIDs := createCourse(t, db, instructorID, 2, 1)

	enrollments := NewEnrollmentService(db)
	ledger := NewProgressService(db)

	_, err := enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)

	_, err = ledger.MarkComplete(studentID, lessonIDs[0])
	require.NoError(t, err)
	_, err = ledger.MarkComplete(studentID, lessonIDs[1])
	require.NoError(t, err)

	summary, err := enrollments.RecomputeProgress(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, 66.67, summary.Percentage)
	assert.False(t, summary.FirstCompletion)

	enrollment, err := enrollments.GetEnrollment(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, 66.67, enrollment.Progress)
	assert.Nil(t, enrollment.CompletionDate)

	// Unchanged ledger, identical output
	again, err := enrollments.RecomputeProgress(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, summary, again)
}

func TestRecomputeProgressSetsCompletionDateOnce(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, lessonIDs := createCourse(t, db, instructorID, 2, 1)

	enrollments := NewEnrollmentService(db)
	ledger := NewProgressService(db)

	_, err := enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)

	for _, lessonID := range lessonIDs {
		_, err = ledger.MarkComplete(studentID, lessonID)
		require.NoError(t, err)
	}

	summary, err := enrollments.RecomputeProgress(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.Percentage)
	assert.True(t, summary.FirstCompletion)

	enrollment, err := enrollments.GetEnrollment(studentID, courseID)
	require.NoError(t, err)
	require.NotNil(t, enrollment.CompletionDate)
	firstDate := *enrollment.CompletionDate

	// The transition fires exactly once; the date never moves
	again, err := enrollments.RecomputeProgress(studentID, courseID)
	require.NoError(t, err)
	assert.False(t, again.FirstCompletion)

	enrollment, err = enrollments.GetEnrollment(studentID, courseID)
	require.NoError(t, err)
	require.NotNil(t, enrollment.CompletionDate)
	assert.True(t, firstDate.Equal(*enrollment.CompletionDate))
}

func TestRecomputeProgressNotEnrolled(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, _ := createCourse(t, db, instructorID, 1)

	enrollments := NewEnrollmentService(db)

	_, err := enrollments.RecomputeProgress(studentID, courseID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestRecomputeProgressZeroLessonCourse(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, _ := createCourse(t, db, instructorID)

	enrollments := NewEnrollmentService(db)
	_, err := enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)

	summary, err := enrollments.RecomputeProgress(studentID, courseID)
	require.NoError(t, err)

	// No lessons means 0%, never a division by zero or instant completion
	assert.Equal(t, 0.0, summary.Percentage)
	assert.False(t, summary.FirstCompletion)
}

func TestListUserEnrollmentsSkipsDeletedCourses(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, _ := createCourse(t, db, instructorID, 1)
	deletedCourseID, _ := createCourse(t, db, instructorID, 1)

	enrollments := NewEnrollmentService(db)
	_, err := enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)
	_, err = enrollments.Enroll(studentID, deletedCourseID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&courseModels.Course{}).
		Where("id = ?", deletedCourseID).Update("is_deleted", true).Error)

	result, err := enrollments.ListUserEnrollments(studentID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, courseID, result[0].CourseID)
	assert.Equal(t, "Test Course", result[0].CourseTitle)
}
