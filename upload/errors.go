package upload

import "fmt"

// AuthError marks a failed exchange of the stored refresh credential for an
// access token. It is kept distinct from provider errors so callers can tell
// misconfigured credentials apart from a rejected upload.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("credential refresh failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ProviderError marks a rejection or interruption from the remote video
// provider: quota exhaustion, metadata the provider refuses, or a dropped
// connection mid-upload.
type ProviderError struct {
	Code    int
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("provider rejected upload (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("upload failed: %s", e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }
