package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lizergic/Transcribe-Tool/internal/ports"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
)

// ModelPickerModel is the bubbletea model for choosing a whisper model.
type ModelPickerModel struct {
	models   []ports.Model
	cursor   int
	selected string
}

// NewModelPickerModel creates a picker over the model catalog.
func NewModelPickerModel(models []ports.Model) ModelPickerModel {
	return ModelPickerModel{models: models}
}

func (m ModelPickerModel) Init() tea.Cmd {
	return nil
}

func (m ModelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.models)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.models[m.cursor].Name
			return m, tea.Quit
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ModelPickerModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Which model should be downloaded?"))
	sb.WriteString("\n\n")

	for i, model := range m.models {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}

		state := ""
		if model.Downloaded {
			state = " (downloaded)"
		}

		sb.WriteString(fmt.Sprintf("%s%s\n", cursor,
			style.Render(fmt.Sprintf("%-8s %s%s", model.Name, model.Description, state))))
	}

	sb.WriteString("\n(up/down to navigate, enter to select, q to quit)\n")
	return sb.String()
}

// Selected returns the chosen model name, empty when cancelled.
func (m ModelPickerModel) Selected() string {
	return m.selected
}

// RunModelPicker displays the picker and returns the chosen model name.
func RunModelPicker(models []ports.Model) (string, error) {
	p := tea.NewProgram(NewModelPickerModel(models))

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	return finalModel.(ModelPickerModel).Selected(), nil
}
