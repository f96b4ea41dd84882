// Package form holds the client-side intake state and its transitions.
// Every user action is a pure transition: methods take the state by value
// and return the successor, so the whole flow is testable without a UI.
package form

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shortlaunch/hashtag"
	"shortlaunch/schedule"
	"shortlaunch/types"
)

// Field defaults restored after a successful submission.
const (
	DefaultCategoryID = "22"
	DefaultLanguage   = "en"
	DefaultPrivacy    = types.PrivacyPrivate

	untitledFallback = "Untitled Short"
)

// Status tracks where the form is in the submission lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

// State is the full client-side intake state: the attached file, metadata
// fields, submission status and the in-memory launch queue. The queue lives
// for one session only.
type State struct {
	FilePath string

	Title             string
	Description       string
	Tags              string
	Date              string
	Time              string
	Privacy           string
	MadeForKids       bool
	NotifySubscribers bool
	CategoryID        string
	Language          string

	Status     Status
	Err        string
	LastResult *types.UploadResult
	Queue      []types.QueueItem

	defaultTags string
}

// New returns an empty form seeded with the configured default tags.
func New(defaultTags string) State {
	return State{
		Tags:        defaultTags,
		Privacy:     DefaultPrivacy,
		CategoryID:  DefaultCategoryID,
		Language:    DefaultLanguage,
		Status:      StatusIdle,
		defaultTags: defaultTags,
	}
}

// PublishAt resolves the scheduled publish time from the date and time
// fields, if one is set.
func (s State) PublishAt() (time.Time, bool) {
	return schedule.Resolve(s.Date, s.Time)
}

// SuggestedHashtags derives candidate hashtags from the current title,
// description and tags.
func (s State) SuggestedHashtags() []string {
	return hashtag.Suggest(s.Title, s.Description, s.Tags)
}

// ApplySuggestions replaces the tags field with the derived hashtags.
func (s State) ApplySuggestions() State {
	if suggestions := s.SuggestedHashtags(); len(suggestions) > 0 {
		s.Tags = strings.Join(suggestions, ", ")
	}
	return s
}

// Validate runs the local pre-submit checks, in order. It returns a
// user-facing message, or "" when the form may be submitted. No network call
// happens before this passes.
func (s State) Validate() string {
	if s.FilePath == "" {
		return "attach a video file before submitting"
	}
	if _, ok := s.PublishAt(); ok && s.Privacy == types.PrivacyPublic {
		return "scheduled releases require private or unlisted visibility"
	}
	return ""
}

// Submission assembles the field map for the multipart upload request.
// Booleans cross the wire as the literal strings "true"/"false"; publishAt
// is included only when a schedule resolved.
func (s State) Submission() map[string]string {
	fields := map[string]string{
		"title":             s.Title,
		"description":       s.Description,
		"tags":              s.Tags,
		"privacyStatus":     s.Privacy,
		"madeForKids":       boolField(s.MadeForKids),
		"notifySubscribers": boolField(s.NotifySubscribers),
		"categoryId":        s.CategoryID,
		"defaultLanguage":   s.Language,
	}
	if ts, ok := s.PublishAt(); ok {
		fields["publishAt"] = ts.Format(time.RFC3339)
	}
	return fields
}

// AddToPlan stages a launch-plan entry from the current fields, independent
// of submission. The entry is "scheduled" when a publish time resolved and
// "draft" otherwise.
func (s State) AddToPlan() State {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		title = untitledFallback
	}

	item := types.QueueItem{
		ID:     uuid.NewString(),
		Title:  title,
		Status: types.QueueStatusDraft,
	}
	if ts, ok := s.PublishAt(); ok {
		item.PublishAt = &ts
		item.Status = types.QueueStatusScheduled
	}

	s.Queue = append(copyQueue(s.Queue), item)
	return s
}

// BeginSubmit marks the form as waiting on the upload API.
func (s State) BeginSubmit() State {
	s.Status = StatusSubmitting
	s.Err = ""
	return s
}

// ApplySuccess records the result, promotes every queue entry whose title
// matches the submitted one and has no URL yet, and clears the fields back
// to their defaults.
func (s State) ApplySuccess(title string, result *types.UploadResult) State {
	queue := copyQueue(s.Queue)
	for i := range queue {
		if queue[i].Title == title && queue[i].URL == "" {
			queue[i].Status = types.QueueStatusUploaded
			queue[i].URL = result.URL
		}
	}

	next := New(s.defaultTags)
	next.Queue = queue
	next.Status = StatusSucceeded
	next.LastResult = result
	return next
}

// ApplyFailure records the message and keeps the fields so the user can
// correct and resubmit. The queue is untouched.
func (s State) ApplyFailure(message string) State {
	s.Status = StatusFailed
	s.Err = message
	return s
}

func boolField(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func copyQueue(queue []types.QueueItem) []types.QueueItem {
	out := make([]types.QueueItem, len(queue))
	copy(out, queue)
	return out
}
