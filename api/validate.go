package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"shortlaunch/types"
)

const (
	minTitleLen       = 5
	minDescriptionLen = 10
)

// buildRequest re-validates the submitted fields independently of any checks
// the client ran; the client cannot be trusted. All violations are collected
// so the caller can report them in one message.
func (ctl *UploadController) buildRequest(c *gin.Context) (*types.UploadRequest, []string) {
	var violations []string

	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < minTitleLen {
		violations = append(violations, fmt.Sprintf("title must be at least %d characters", minTitleLen))
	}

	description := strings.TrimSpace(c.PostForm("description"))
	if len(description) < minDescriptionLen {
		violations = append(violations, fmt.Sprintf("description must be at least %d characters", minDescriptionLen))
	}

	privacy := c.PostForm("privacyStatus")
	if privacy == "" {
		privacy = ctl.defaultPrivacy
	}
	if !types.ValidPrivacy(privacy) {
		violations = append(violations, "privacyStatus must be public, private or unlisted")
	}

	// A present-but-malformed timestamp is a request error here, unlike the
	// client-side resolver which silently degrades to "no schedule".
	var publishAt *time.Time
	if raw := c.PostForm("publishAt"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			violations = append(violations, "publishAt must be a valid RFC 3339 timestamp")
		} else {
			publishAt = &ts
		}
	}
	if publishAt != nil && privacy == types.PrivacyPublic {
		violations = append(violations, "a scheduled release cannot be public")
	}

	req := &types.UploadRequest{
		Title:             title,
		Description:       description,
		Tags:              splitTags(c.PostForm("tags")),
		PrivacyStatus:     privacy,
		PublishAt:         publishAt,
		MadeForKids:       c.PostForm("madeForKids") == "true",
		NotifySubscribers: c.PostForm("notifySubscribers") == "true",
		CategoryID:        normalizeCategory(c.PostForm("categoryId")),
		DefaultLanguage:   c.PostForm("defaultLanguage"),
	}
	return req, violations
}

// splitTags comma-splits the tags field, trimming entries and dropping empty
// ones.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return lo.FilterMap(strings.Split(raw, ","), func(tag string, _ int) (string, bool) {
		tag = strings.TrimSpace(tag)
		return tag, tag != ""
	})
}

func joinViolations(violations []string) string {
	return strings.Join(violations, "; ")
}
