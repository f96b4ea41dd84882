package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlaunch/types"
)

func TestNewDefaults(t *testing.T) {
	s := New("#shorts, #daily")

	assert.Equal(t, "#shorts, #daily", s.Tags)
	assert.Equal(t, DefaultPrivacy, s.Privacy)
	assert.Equal(t, DefaultCategoryID, s.CategoryID)
	assert.Equal(t, DefaultLanguage, s.Language)
	assert.Equal(t, StatusIdle, s.Status)
	assert.Empty(t, s.Queue)
}

func TestValidateRequiresFile(t *testing.T) {
	s := New("")
	s.Title = "My first short"

	msg := s.Validate()
	require.NotEmpty(t, msg)
	assert.Contains(t, msg, "video file")
}

func TestValidateRejectsPublicSchedule(t *testing.T) {
	s := New("")
	s.FilePath = "/videos/clip.mp4"
	s.Date = "2024-05-01"
	s.Privacy = types.PrivacyPublic

	msg := s.Validate()
	require.NotEmpty(t, msg)
	assert.Contains(t, msg, "private or unlisted")

	// The same schedule is fine with a non-public visibility.
	s.Privacy = types.PrivacyUnlisted
	assert.Empty(t, s.Validate())

	// And public is fine without a schedule.
	s.Privacy = types.PrivacyPublic
	s.Date = ""
	assert.Empty(t, s.Validate())
}

func TestSubmissionFields(t *testing.T) {
	s := New("")
	s.Title = "Sunset timelapse"
	s.Description = "Golden hour over the bay"
	s.Tags = "sunset, timelapse"
	s.MadeForKids = false
	s.NotifySubscribers = true

	fields := s.Submission()
	assert.Equal(t, "Sunset timelapse", fields["title"])
	assert.Equal(t, "false", fields["madeForKids"])
	assert.Equal(t, "true", fields["notifySubscribers"])
	assert.NotContains(t, fields, "publishAt")

	s.Date = "2024-05-01"
	s.Time = "18:30"
	fields = s.Submission()
	want := time.Date(2024, 5, 1, 18, 30, 0, 0, time.Local).Format(time.RFC3339)
	assert.Equal(t, want, fields["publishAt"])

	// An unparseable date degrades to "no schedule" rather than failing.
	s.Date = "not-a-date"
	fields = s.Submission()
	assert.NotContains(t, fields, "publishAt")
}

func TestAddToPlan(t *testing.T) {
	s := New("")

	s = s.AddToPlan()
	require.Len(t, s.Queue, 1)
	assert.Equal(t, "Untitled Short", s.Queue[0].Title)
	assert.Equal(t, types.QueueStatusDraft, s.Queue[0].Status)
	assert.Nil(t, s.Queue[0].PublishAt)
	assert.NotEmpty(t, s.Queue[0].ID)

	s.Title = "Launch day"
	s.Date = "2024-06-10"
	s = s.AddToPlan()
	require.Len(t, s.Queue, 2)
	assert.Equal(t, "Launch day", s.Queue[1].Title)
	assert.Equal(t, types.QueueStatusScheduled, s.Queue[1].Status)
	require.NotNil(t, s.Queue[1].PublishAt)
	assert.NotEqual(t, s.Queue[0].ID, s.Queue[1].ID)
}

func TestAddToPlanDoesNotMutateOriginal(t *testing.T) {
	s := New("")
	s.Title = "One"
	next := s.AddToPlan()

	assert.Empty(t, s.Queue)
	assert.Len(t, next.Queue, 1)
}

func TestApplySuccessPromotesQueueAndResets(t *testing.T) {
	s := New("#seed")
	s.Title = "Launch day"
	s = s.AddToPlan()
	s.Description = "details"
	s.MadeForKids = true
	s.FilePath = "/videos/clip.mp4"
	s.Tags = "edited, tags"

	result := &types.UploadResult{VideoID: "abc123", URL: "https://www.youtube.com/watch?v=abc123"}
	next := s.ApplySuccess("Launch day", result)

	require.Len(t, next.Queue, 1)
	assert.Equal(t, types.QueueStatusUploaded, next.Queue[0].Status)
	assert.Equal(t, result.URL, next.Queue[0].URL)

	assert.Equal(t, StatusSucceeded, next.Status)
	assert.Equal(t, result, next.LastResult)

	// Fields are back to their defaults, including the seeded tags.
	assert.Empty(t, next.Title)
	assert.Empty(t, next.Description)
	assert.Empty(t, next.FilePath)
	assert.False(t, next.MadeForKids)
	assert.Equal(t, "#seed", next.Tags)
	assert.Equal(t, DefaultPrivacy, next.Privacy)
}

func TestApplySuccessSkipsAlreadyUploadedEntries(t *testing.T) {
	s := New("")
	s.Title = "Repeat"
	s = s.AddToPlan()
	s.Queue[0].URL = "https://www.youtube.com/watch?v=old"
	s.Queue[0].Status = types.QueueStatusUploaded

	next := s.ApplySuccess("Repeat", &types.UploadResult{VideoID: "new", URL: "https://www.youtube.com/watch?v=new"})
	assert.Equal(t, "https://www.youtube.com/watch?v=old", next.Queue[0].URL)
}

func TestApplyFailureKeepsFields(t *testing.T) {
	s := New("")
	s.Title = "Keep me"
	s.FilePath = "/videos/clip.mp4"
	s = s.AddToPlan()

	next := s.ApplyFailure("quota exceeded")

	assert.Equal(t, StatusFailed, next.Status)
	assert.Equal(t, "quota exceeded", next.Err)
	assert.Equal(t, "Keep me", next.Title)
	assert.Equal(t, "/videos/clip.mp4", next.FilePath)
	require.Len(t, next.Queue, 1)
	assert.Equal(t, types.QueueStatusDraft, next.Queue[0].Status)
}

func TestApplySuggestions(t *testing.T) {
	s := New("")
	s.Title = "skateboard tricks compilation"
	s.Description = "street session #skate"

	next := s.ApplySuggestions()
	assert.Contains(t, next.Tags, "#skate")
	assert.Contains(t, next.Tags, "#skateboard")
}
