package tui

import (
	"fmt"
	"strings"

	"shortlaunch/form"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🎬 Shorts Launchpad"))
	b.WriteString("\n\n")

	b.WriteString(m.renderFields())
	b.WriteString("\n")

	if suggestions := m.Form.SuggestedHashtags(); len(suggestions) > 0 {
		b.WriteString(InfoStyle.Render("Suggested: " + strings.Join(suggestions, " ")))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	if len(m.Form.Queue) > 0 {
		b.WriteString(m.renderQueue())
		b.WriteString("\n")
	}

	b.WriteString(InfoStyle.Render("tab: next field | enter/space: toggle | ctrl+h: use suggested tags | ctrl+s: upload | ctrl+p: add to launch plan | ctrl+c: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderFields() string {
	var b strings.Builder
	for f := Field(0); f < fieldCount; f++ {
		label := LabelStyle.Render(fieldLabels[f])
		value := m.displayValue(f)
		if f == m.Focus {
			b.WriteString(fmt.Sprintf("%s %s\n", label, FocusedStyle.Render("› "+value)))
		} else {
			b.WriteString(fmt.Sprintf("%s   %s\n", label, value))
		}
	}
	return BoxStyle.Render(b.String())
}

func (m Model) displayValue(f Field) string {
	switch f {
	case FieldFile:
		if m.Form.FilePath == "" {
			return InfoStyle.Render("(none)")
		}
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
	case FieldPrivacy:
		return m.Form.Privacy
	case FieldMadeForKids:
		return checkbox(m.Form.MadeForKids)
	case FieldNotify:
		return checkbox(m.Form.NotifySubscribers)
	case FieldCategory:
		return m.Form.CategoryID
	case FieldLanguage:
		return m.Form.Language
	}
	return ""
}

func (m Model) renderStatus() string {
	switch m.Form.Status {
	case form.StatusSubmitting:
		return StatusStyle.Render("⏳ Uploading...")
	case form.StatusSucceeded:
		if m.Form.LastResult != nil {
			return HighlightStyle.Render("✅ Uploaded") + " " +
				StatusStyle.Render(m.Form.LastResult.URL)
		}
		return HighlightStyle.Render("✅ Uploaded")
	case form.StatusFailed:
		return ErrorStyle.Render("❌ " + m.Form.Err)
	default:
		return InfoStyle.Render("Fill in the fields and press ctrl+s to upload")
	}
}

func (m Model) renderQueue() string {
	var b strings.Builder
	b.WriteString(HighlightStyle.Render("Launch plan"))
	b.WriteString("\n")
	for _, item := range m.Form.Queue {
		line := fmt.Sprintf("• %s [%s]", item.Title, item.Status)
		if item.PublishAt != nil {
			line += " @ " + item.PublishAt.Format("2006-01-02 15:04")
		}
		if item.URL != "" {
			line += " " + item.URL
		}
		b.WriteString(InfoStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
