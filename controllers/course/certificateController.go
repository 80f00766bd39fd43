package controllers

import (
	"skillup/config"
	"skillup/database"
	"skillup/middleware"
	courseModels "skillup/models/course"
	courseService "skillup/services/course"

	"github.com/gofiber/fiber/v2"
)

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificates := courseService.NewCertificateService(database.Database.Db)
	certs, err := certificates.GetUserCertificates(userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseTitle string `json:"course_title"`
	}

	result := make([]CertificateWithCourse, len(certs))
	for i, cert := range certs {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseTitle: course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// GetCourseCertificatesList lists certificates issued for a course. Instructors
// may only inspect their own courses.
func GetCourseCertificatesList(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	if _, ok := instructorOwnsCourse(c, userID, courseID); !ok {
		return nil
	}

	certificates := courseService.NewCertificateService(database.Database.Db)
	certs, err := certificates.GetCourseCertificates(courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certs,
		"total":        len(certs),
	})
}

// RequestCertificate explicitly issues a certificate for a completed course.
// Idempotent: re-requesting returns the existing certificate.
func RequestCertificate(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	certificates := courseService.NewCertificateService(database.Database.Db)
	certificate, err := certificates.Issue(userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", certificate)
}

// VerifyCertificate is the public existence check for a certificate UID.
func VerifyCertificate(c *fiber.Ctx) error {
	certUID := c.Locals("certUID").(string)

	certificates := courseService.NewCertificateService(database.Database.Db)
	valid, err := certificates.VerifyByUID(certUID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	if !valid {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", fiber.Map{
			"valid": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate is valid!", fiber.Map{
		"valid": true,
	})
}

// DownloadCertificate resolves a certificate UID to its full record for the
// public download endpoint referenced by cert URLs.
func DownloadCertificate(c *fiber.Ctx) error {
	certUID := c.Locals("certUID").(string)

	certificates := courseService.NewCertificateService(database.Database.Db)
	certificate, err := certificates.GetByUID(certUID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", certificate.CourseID).First(&course)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", fiber.Map{
		"certificate":  certificate,
		"course_title": course.Title,
		"download_url": config.AppConfig.CertBaseURL + certificate.CertURL,
	})
}
