package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shortlaunch/demo/client"
	"shortlaunch/form"
)

// Field identifies one editable intake field.
type Field int

const (
	FieldFile Field = iota
	FieldTitle
	FieldDescription
	FieldTags
	FieldDate
	FieldTime
	FieldPrivacy
	FieldMadeForKids
	FieldNotify
	FieldCategory
	FieldLanguage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldFile:        "Video file",
	FieldTitle:       "Title",
	FieldDescription: "Description",
	FieldTags:        "Tags (comma-separated)",
	FieldDate:        "Publish date (2006-01-02)",
	FieldTime:        "Publish time (15:04)",
	FieldPrivacy:     "Privacy",
	FieldMadeForKids: "Made for kids",
	FieldNotify:      "Notify subscribers",
	FieldCategory:    "Category",
	FieldLanguage:    "Language",
}

// Model wraps the intake form state for the terminal UI. The model tracks
// field focus and text entry; submission, queueing and reset semantics live
// in the form package's pure transitions.
type Model struct {
	Client *client.Client
	Form   form.State
	Focus  Field
}

// NewModel creates a new TUI model.
func NewModel(apiURL, defaultTags string) Model {
	return Model{
		Client: client.NewClient(apiURL),
		Form:   form.New(defaultTags),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}
