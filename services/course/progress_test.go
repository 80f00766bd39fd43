package courseService

import (
	"testing"

	"skillup/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkCompleteRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	_, lessonIDs := createCourse(t, db, instructorID, 2)

	ledger := NewProgressService(db)

	_, err := ledger.MarkComplete(studentID, lessonIDs[0])
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestMarkCompleteUnknownLesson(t *testing.T) {
	db := newTestDB(t)
	studentID := createUser(t, db, models.RoleStudent)

	ledger := NewProgressService(db)

	_, err := ledger.MarkComplete(studentID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkCompleteIdempotent(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, lessonIDs := createCourse(t, db, instructorID, 2)

	enrollments := NewEnrollmentService(db)
	_, err := enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)

	ledger := NewProgressService(db)

	first, err := ledger.MarkComplete(studentID, lessonIDs[0])
	require.NoError(t, err)
	require.True(t, first.Completed)
	require.NotNil(t, first.CompletedAt)

	// Marking again is a no-op returning the original record
	second, err := ledger.MarkComplete(studentID, lessonIDs[0])
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.CompletedAt.Equal(*second.CompletedAt))
}

func TestGetCompletionMapSeedsUntouchedLessons(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	studentID := createUser(t, db, models.RoleStudent)
	courseID, lessonIDs := createCourse(t, db, instructorID, 3)

	enrollments := NewEnrollmentService(db)
	_, err := enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)

	ledger := NewProgressService(db)
	_, err = ledger.MarkComplete(studentID, lessonIDs[1])
	require.NoError(t, err)

	completion, err := ledger.GetCompletionMap(studentID, lessonIDs)
	require.NoError(t, err)

	assert.Len(t, completion, 3)
	assert.False(t, completion[lessonIDs[0]])
	assert.True(t, completion[lessonIDs[1]])
	assert.False(t, completion[lessonIDs[2]])
}

func TestGetCompletionMapEmptyLessonSet(t *testing.T) {
	db := newTestDB(t)
	studentID := createUser(t, db, models.RoleStudent)

	ledger := NewProgressService(db)

	completion, err := ledger.GetCompletionMap(studentID, nil)
	require.NoError(t, err)
	assert.Empty(t, completion)
}
