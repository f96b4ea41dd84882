package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shortlaunch/upload"
)

// maxUploadBytes caps the media payload at 1 GiB.
const maxUploadBytes int64 = 1 << 30

func exceedsSizeLimit(size int64) bool {
	return size > maxUploadBytes
}

// UploadController handles video upload submissions.
type UploadController struct {
	submitter      upload.Submitter
	defaultPrivacy string
}

// RegisterUploadRoutes registers upload-related routes.
func RegisterUploadRoutes(r *gin.Engine, submitter upload.Submitter, defaultPrivacy string) {
	ctl := &UploadController{submitter: submitter, defaultPrivacy: defaultPrivacy}
	r.POST("/api/upload", ctl.handleUpload)
	r.GET("/api/upload/:id/status", ctl.handleStatus)
}

// handleUpload validates a multipart submission and forwards it to the
// provider. The media checks run before schema validation so an oversized
// body is rejected without reading the rest of the form.
// POST /api/upload
// Returns: 201 {videoId, url} / 400 {error} / 500 {error}
func (ctl *UploadController) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a video file is required"})
		return
	}
	if exceedsSizeLimit(fileHeader.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video exceeds the 1 GiB upload limit"})
		return
	}

	req, violations := ctl.buildRequest(c)
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": joinViolations(violations)})
		return
	}

	media, err := fileHeader.Open()
	if err != nil {
		log.Printf("failed to open uploaded media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to read uploaded file"})
		return
	}
	defer media.Close()

	req.Media = media
	req.FileName = fileHeader.Filename
	req.MimeType = fileHeader.Header.Get("Content-Type")
	req.Size = fileHeader.Size

	result, err := ctl.submitter.Submit(c.Request.Context(), req)
	if err != nil {
		var authErr *upload.AuthError
		if errors.As(err, &authErr) {
			log.Printf("credential refresh failed for upload %q: %v", req.Title, err)
		} else {
			log.Printf("provider rejected upload %q: %v", req.Title, err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": userMessage(err)})
		return
	}

	log.Printf("uploaded %q as %s", req.Title, result.VideoID)
	c.JSON(http.StatusCreated, result)
}

// handleStatus reports the provider-side processing status of an upload.
// GET /api/upload/:id/status
func (ctl *UploadController) handleStatus(c *gin.Context) {
	videoID := c.Param("id")

	status, err := ctl.submitter.CheckStatus(c.Request.Context(), videoID)
	if err != nil {
		log.Printf("status lookup failed for %s: %v", videoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": userMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videoId": videoID, "status": status})
}

// userMessage picks the error text surfaced to the client. Provider messages
// are passed through when present; everything else gets a generic fallback.
func userMessage(err error) string {
	var provErr *upload.ProviderError
	if errors.As(err, &provErr) && provErr.Message != "" {
		return provErr.Message
	}
	var authErr *upload.AuthError
	if errors.As(err, &authErr) {
		return "authorization with the video provider failed"
	}
	return "upload failed"
}
