package tui

import "shortlaunch/types"

// UploadFinishedMsg is sent when the upload API call completes. Title is the
// title at submission time, so a success can promote the right queue entry
// even if the user edited the form while waiting.
type UploadFinishedMsg struct {
	Title  string
	Result *types.UploadResult
	Err    error
}
