package utils

import (
	"log"
	"time"

	"skillup/config"

	"github.com/go-resty/resty/v2"
)

// CompletionEvent is the payload posted to the completion webhook when a
// student finishes a course.
type CompletionEvent struct {
	UserID    uint   `json:"user_id"`
	CourseID  uint   `json:"course_id"`
	CertUID   string `json:"cert_uid,omitempty"`
	Completed string `json:"completed_at"`
}

// NotifyCourseCompletion posts a completion event to the configured webhook.
// Best-effort: failures are logged and never propagated to the caller.
func NotifyCourseCompletion(userID, courseID uint, certUID string) {
	url := config.AppConfig.CompletionWebhookURL
	if url == "" {
		return
	}

	event := CompletionEvent{
		UserID:    userID,
		CourseID:  courseID,
		CertUID:   certUID,
		Completed: time.Now().Format(time.RFC3339),
	}

	go func() {
		client := resty.New().SetTimeout(10 * time.Second)
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(event).
			Post(url)
		if err != nil {
			log.Printf("Completion webhook failed for user %d course %d: %v", userID, courseID, err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("Completion webhook returned status %d for user %d course %d", resp.StatusCode(), userID, courseID)
		}
	}()
}
