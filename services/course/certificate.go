package courseService

import (
	"errors"
	"log"
	"time"

	"skillup/models"
	courseModels "skillup/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateService issues and verifies course-completion certificates.
// Issuance is idempotent: one certificate per (user, course), ever.
type CertificateService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{db: db, catalog: NewCatalogService(db)}
}

// certDownloadURL builds the public download path for a certificate UID.
func certDownloadURL(certUID string) string {
	return "/api/certificates/" + certUID + "/download"
}

// Issue creates the certificate for a completed enrollment, or returns the
// existing one unchanged. Preconditions: the user resolves to a student and the
// enrollment shows 100% progress with a completion date. Under a concurrent
// double issue, the loser of the (user_id, course_id) unique index re-fetches
// and returns the winner's row.
func (s *CertificateService) Issue(userID, courseID uint) (*courseModels.Certificate, error) {
	role, err := s.catalog.GetUserRole(userID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleStudent {
		return nil, ErrRoleNotEligible
	}

	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}
	if enrollment.CompletionDate == nil || enrollment.Progress < 100.0 {
		return nil, ErrCourseNotCompleted
	}

	var existing courseModels.Certificate
	err = s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	certUID := uuid.NewString()
	certificate := courseModels.Certificate{
		UserID:   userID,
		CourseID: courseID,
		CertUID:  certUID,
		CertURL:  certDownloadURL(certUID),
		IssuedAt: startOfDay(time.Now()),
	}
	if err := s.db.Create(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
				First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}

	return &certificate, nil
}

// AutoIssue wraps Issue for the completion flow. Certificate generation is not
// critical: every error is logged and swallowed so the triggering progress
// update never fails or rolls back because of it.
func (s *CertificateService) AutoIssue(userID, courseID uint) *courseModels.Certificate {
	certificate, err := s.Issue(userID, courseID)
	if err != nil {
		log.Printf("Failed to auto-issue certificate for user %d course %d: %v", userID, courseID, err)
		return nil
	}
	return certificate
}

// VerifyByUID reports whether a certificate with the given UID exists.
func (s *CertificateService) VerifyByUID(certUID string) (bool, error) {
	var count int64
	err := s.db.Model(&courseModels.Certificate{}).
		Where("cert_uid = ?", certUID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByUID fetches a certificate by its UID.
func (s *CertificateService) GetByUID(certUID string) (*courseModels.Certificate, error) {
	var certificate courseModels.Certificate
	if err := s.db.Where("cert_uid = ?", certUID).First(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &certificate, nil
}

// GetUserCertificates returns the user's certificates, newest first.
func (s *CertificateService) GetUserCertificates(userID uint) ([]courseModels.Certificate, error) {
	var certificates []courseModels.Certificate
	if err := s.db.Where("user_id = ?", userID).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}

// GetCourseCertificates returns all certificates issued for a course.
func (s *CertificateService) GetCourseCertificates(courseID uint) ([]courseModels.Certificate, error) {
	var certificates []courseModels.Certificate
	if err := s.db.Where("course_id = ?", courseID).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}

// Delete removes a certificate by ID. Administrative operation; nothing in the
// completion flow re-issues a deleted certificate.
func (s *CertificateService) Delete(certificateID uint) error {
	result := s.db.Delete(&courseModels.Certificate{}, certificateID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
