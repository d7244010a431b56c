package projectinput

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/store"
	"github.com/nhle/project-board/internal/theme"
)

// InvalidInputMessage is shown when any field fails validation.
const InvalidInputMessage = "Invalid Input! Please try again"

// ProjectCreatedMsg is dispatched after a project was added to the store.
type ProjectCreatedMsg struct {
	Project model.Project
}

// ProjectInputCancelMsg is dispatched when the user leaves the form.
type ProjectInputCancelMsg struct{}

type inputMode int

const (
	modeForm inputMode = iota
	modeAlert
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	people      string
}

// Model is the Bubble Tea model for the new-project form.
type Model struct {
	mode   inputMode
	form   *huh.Form
	fb     *formBindings
	store  store.Store
	logger *zap.Logger
	alert  string
	width  int
	height int
}

// New creates a new project input model.
func New(s store.Store, logger *zap.Logger, width, height int) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		fb:     &formBindings{},
		store:  s,
		logger: logger,
		width:  width,
		height: height,
	}
}

// Start builds the form around the current field values. Values survive
// a failed submission and a cancel; a successful submission clears them.
func (m *Model) Start() tea.Cmd {
	m.mode = modeForm
	m.alert = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// Values returns the current field contents.
func (m Model) Values() RawInput {
	return RawInput{
		Title:       m.fb.title,
		Description: m.fb.description,
		People:      m.fb.people,
	}
}

// SetValues replaces the current field contents.
func (m *Model) SetValues(raw RawInput) {
	m.fb.title = raw.Title
	m.fb.description = raw.Description
	m.fb.people = raw.People
}

// Alert returns the blocking error message, if one is showing.
func (m Model) Alert() string {
	if m.mode != modeAlert {
		return ""
	}
	return m.alert
}

// Update handles messages for the project form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.mode == modeAlert {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "enter", "esc", " ":
				cmd := m.Start()
				return m, cmd
			}
		}
		return m, nil
	}

	if m.form == nil {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return m, func() tea.Msg { return ProjectInputCancelMsg{} }
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.Submit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return ProjectInputCancelMsg{} }
	}

	return m, cmd
}

// Submit validates the current values. On failure it raises the alert and
// keeps the values; on success it adds the project, clears the values and
// emits ProjectCreatedMsg.
func (m Model) Submit() (Model, tea.Cmd) {
	in, ok := Gather(m.Values())
	if !ok {
		m.logger.Debug("project input rejected")
		m.mode = modeAlert
		m.alert = InvalidInputMessage
		return m, nil
	}

	p := m.store.AddProject(in.Title, in.Description, in.People)
	m.clear()
	m.form = m.buildForm()
	return m, func() tea.Msg { return ProjectCreatedMsg{Project: p} }
}

func (m *Model) clear() {
	m.fb.title = ""
	m.fb.description = ""
	m.fb.people = ""
}

// View renders the project form or the blocking alert.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	if m.mode == modeAlert {
		alert := theme.AlertStyle.Render(m.alert + "\n\n" +
			theme.HelpStyle.Render("enter to continue"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, alert)
	}

	if m.form == nil {
		return ""
	}

	content := titleStyle.Render("New Project") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What is the project called?").
				Value(&m.fb.title),
			huh.NewText().
				Title("Description").
				Placeholder("More than five characters").
				Value(&m.fb.description),
			huh.NewInput().
				Title("People").
				Placeholder("How many people work on it?").
				Value(&m.fb.people),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}
