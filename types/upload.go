package types

import (
	"io"
	"time"
)

// Privacy statuses accepted by the upload API.
const (
	PrivacyPublic   = "public"
	PrivacyPrivate  = "private"
	PrivacyUnlisted = "unlisted"
)

// ValidPrivacy reports whether s is one of the accepted privacy statuses.
func ValidPrivacy(s string) bool {
	return s == PrivacyPublic || s == PrivacyPrivate || s == PrivacyUnlisted
}

// UploadRequest carries everything needed for one video submission.
// A scheduled release (PublishAt set) must not be public.
type UploadRequest struct {
	Media    io.Reader `json:"-"`
	FileName string    `json:"-"`
	MimeType string    `json:"-"`
	Size     int64     `json:"-"`

	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Tags              []string   `json:"tags,omitempty"`
	PrivacyStatus     string     `json:"privacyStatus"`
	PublishAt         *time.Time `json:"publishAt,omitempty"`
	MadeForKids       bool       `json:"madeForKids"`
	NotifySubscribers bool       `json:"notifySubscribers"`
	CategoryID        string     `json:"categoryId"`
	DefaultLanguage   string     `json:"defaultLanguage,omitempty"`
}

// UploadResult is the outcome of one successful submission.
type UploadResult struct {
	VideoID string `json:"videoId"`
	URL     string `json:"url"`
}

// Launch-plan entry statuses.
const (
	QueueStatusDraft     = "draft"
	QueueStatusReady     = "ready"
	QueueStatusScheduled = "scheduled"
	QueueStatusUploaded  = "uploaded"
)

// QueueItem is one staged entry in the client's launch plan. Items live in
// memory for the duration of a session and are never persisted.
type QueueItem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	PublishAt *time.Time `json:"publishAt,omitempty"`
	Status    string     `json:"status"`
	URL       string     `json:"url,omitempty"`
}
