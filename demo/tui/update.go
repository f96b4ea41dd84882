package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shortlaunch/form"
	"shortlaunch/types"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case UploadFinishedMsg:
		return m.handleUploadFinished(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input. While a submission is in flight
// only quitting is allowed; the fields are frozen until the result arrives.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.Form.Status == form.StatusSubmitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		m.Focus = (m.Focus + 1) % fieldCount
		return m, nil
	case "shift+tab", "up":
		m.Focus = (m.Focus + fieldCount - 1) % fieldCount
		return m, nil
	case "ctrl+p":
		m.Form = m.Form.AddToPlan()
		return m, nil
	case "ctrl+h":
		m.Form = m.Form.ApplySuggestions()
		return m, nil
	case "ctrl+s":
		return m.startSubmit()
	case "enter", " ":
		if toggled, ok := m.toggleField(); ok {
			return toggled, nil
		}
		if msg.String() == " " {
			return m.editField(" "), nil
		}
		return m, nil
	case "backspace":
		return m.trimField(), nil
	}

	if len(msg.Runes) > 0 {
		return m.editField(string(msg.Runes)), nil
	}
	return m, nil
}

// startSubmit runs the local pre-submit checks and, when they pass, fires
// the upload command with a snapshot of the assembled fields.
func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	if msg := m.Form.Validate(); msg != "" {
		m.Form = m.Form.ApplyFailure(msg)
		return m, nil
	}

	title := m.Form.Title
	filePath := m.Form.FilePath
	fields := m.Form.Submission()
	m.Form = m.Form.BeginSubmit()
	return m, submitUpload(m.Client, filePath, title, fields)
}

// handleUploadFinished applies the submission outcome to the form.
func (m Model) handleUploadFinished(msg UploadFinishedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Form = m.Form.ApplyFailure(msg.Err.Error())
		return m, nil
	}
	m.Form = m.Form.ApplySuccess(msg.Title, msg.Result)
	return m, nil
}

// toggleField flips the focused boolean field or cycles privacy. The second
// return is false when the focused field is free text.
func (m Model) toggleField() (Model, bool) {
	switch m.Focus {
	case FieldPrivacy:
		m.Form.Privacy = nextPrivacy(m.Form.Privacy)
		return m, true
	case FieldMadeForKids:
		m.Form.MadeForKids = !m.Form.MadeForKids
		return m, true
	case FieldNotify:
		m.Form.NotifySubscribers = !m.Form.NotifySubscribers
		return m, true
	}
	return m, false
}

func nextPrivacy(current string) string {
	switch current {
	case types.PrivacyPrivate:
		return types.PrivacyUnlisted
	case types.PrivacyUnlisted:
		return types.PrivacyPublic
	default:
		return types.PrivacyPrivate
	}
}

// editField appends text to the focused field.
func (m Model) editField(text string) Model {
	return m.setFieldValue(m.fieldValue() + text)
}

// trimField removes the last character from the focused field.
func (m Model) trimField() Model {
	value := []rune(m.fieldValue())
	if len(value) == 0 {
		return m
	}
	return m.setFieldValue(string(value[:len(value)-1]))
}

func (m Model) fieldValue() string {
	switch m.Focus {
	case FieldFile:
		return m.Form.FilePath
	case FieldTitle:
		return m.Form.Title
	case FieldDescription:
		return m.Form.Description
	case FieldTags:
		return m.Form.Tags
	case FieldDate:
		return m.Form.Date
	case FieldTime:
		return m.Form.Time
	case FieldCategory:
		return m.Form.CategoryID
	case FieldLanguage:
		return m.Form.Language
	}
	return ""
}

func (m Model) setFieldValue(value string) Model {
	switch m.Focus {
	case FieldFile:
		m.Form.FilePath = value
	case FieldTitle:
		m.Form.Title = value
	case FieldDescription:
		m.Form.Description = value
	case FieldTags:
		m.Form.Tags = value
	case FieldDate:
		m.Form.Date = value
	case FieldTime:
		m.Form.Time = value
	case FieldCategory:
		m.Form.CategoryID = value
	case FieldLanguage:
		m.Form.Language = value
	}
	return m
}
