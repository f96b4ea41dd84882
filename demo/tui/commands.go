package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"shortlaunch/demo/client"
)

// submitUpload posts the assembled form to the upload API in the background.
func submitUpload(c *client.Client, filePath, title string, fields map[string]string) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Upload(context.Background(), filePath, fields)
		return UploadFinishedMsg{Title: title, Result: result, Err: err}
	}
}
