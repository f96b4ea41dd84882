package upload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"shortlaunch/types"
)

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// Post-upload processing statuses reported by the provider.
const (
	StatusUploaded  = "uploaded"
	StatusProcessed = "processed"
	StatusFailed    = "failed"
	StatusRejected  = "rejected"
	StatusDeleted   = "deleted"
)

// ErrUnknownStatus is returned when the provider reports a processing status
// outside the documented set.
var ErrUnknownStatus = errors.New("unknown video status")

// Submitter sends a validated upload request to the hosting provider.
type Submitter interface {
	Submit(ctx context.Context, req *types.UploadRequest) (*types.UploadResult, error)
	CheckStatus(ctx context.Context, videoID string) (string, error)
}

// YouTubeSubmitter streams media and metadata to the YouTube Data API.
type YouTubeSubmitter struct {
	tokens TokenProvider
}

// NewYouTubeSubmitter creates a submitter backed by the given credentials.
func NewYouTubeSubmitter(tokens TokenProvider) *YouTubeSubmitter {
	return &YouTubeSubmitter{tokens: tokens}
}

// Submit uploads the media and metadata in a single insert call and returns
// the provider-assigned video ID with its canonical watch URL. Credential
// failures surface as *AuthError, provider rejections as *ProviderError.
// There is no internal timeout: the caller's execution budget is the bound.
func (s *YouTubeSubmitter) Submit(ctx context.Context, req *types.UploadRequest) (*types.UploadResult, error) {
	svc, err := s.service(ctx)
	if err != nil {
		return nil, err
	}

	call := svc.Videos.Insert([]string{"snippet", "status"}, buildVideo(req)).
		NotifySubscribers(req.NotifySubscribers).
		Context(ctx)

	if req.MimeType != "" {
		call = call.Media(req.Media, googleapi.ContentType(req.MimeType))
	} else {
		call = call.Media(req.Media)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, providerErr(err)
	}

	return &types.UploadResult{
		VideoID: resp.Id,
		URL:     fmt.Sprintf(watchURLFormat, resp.Id),
	}, nil
}

// CheckStatus looks up the provider-side processing status for an uploaded
// video.
func (s *YouTubeSubmitter) CheckStatus(ctx context.Context, videoID string) (string, error) {
	svc, err := s.service(ctx)
	if err != nil {
		return "", err
	}

	resp, err := svc.Videos.List([]string{"status"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return "", providerErr(err)
	}
	if len(resp.Items) == 0 {
		return "", &ProviderError{Message: fmt.Sprintf("video %s not found", videoID)}
	}

	switch status := resp.Items[0].Status.UploadStatus; status {
	case StatusUploaded, StatusProcessed, StatusFailed, StatusRejected, StatusDeleted:
		return status, nil
	default:
		return "", ErrUnknownStatus
	}
}

// service exchanges credentials first so an invalid refresh token is
// reported as an auth failure rather than a provider one.
func (s *YouTubeSubmitter) service(ctx context.Context) (*youtube.Service, error) {
	if _, err := s.tokens.AccessToken(ctx); err != nil {
		return nil, err
	}

	svc, err := youtube.NewService(ctx, option.WithTokenSource(s.tokens.TokenSource()))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}
	return svc, nil
}

// buildVideo maps an upload request onto the provider's insert payload.
func buildVideo(req *types.UploadRequest) *youtube.Video {
	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:           req.Title,
			Description:     req.Description,
			Tags:            req.Tags,
			CategoryId:      req.CategoryID,
			DefaultLanguage: req.DefaultLanguage,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           req.PrivacyStatus,
			MadeForKids:             req.MadeForKids,
			SelfDeclaredMadeForKids: req.MadeForKids,
		},
	}
	if req.PublishAt != nil {
		video.Status.PublishAt = req.PublishAt.Format(time.RFC3339)
	}
	return video
}

// providerErr normalizes transport and API failures into *ProviderError.
func providerErr(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &ProviderError{Code: gerr.Code, Message: gerr.Message, Err: err}
	}
	return &ProviderError{Message: err.Error(), Err: err}
}
