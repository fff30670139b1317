package wizards

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/romanpravda/scormpack/internal/tui"
	"github.com/romanpravda/scormpack/internal/tui/components"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// TemplateInfo holds template metadata for display.
type TemplateInfo struct {
	Name        string
	Description string
}

// DefaultTemplates returns the available template information.
func DefaultTemplates() []TemplateInfo {
	return []TemplateInfo{
		{Name: "basic", Description: "Single launch page, no runtime calls"},
		{Name: "api-wrapper", Description: "Launch page with a small LMS API wrapper script"},
	}
}

// InitResult holds the result of the init wizard.
type InitResult struct {
	Cancelled bool
	TargetDir string
	Name      string
	Version   scormpack.Version
	Template  string
}

// InitWizard asks for the course title, SCORM version and template.
type InitWizard struct {
	step initStep

	name      components.TextField
	versions  components.Selector
	templates components.Selector

	targetDir string
	result    InitResult

	width  int
	height int

	keys tui.KeyMap
}

type initStep int

const (
	initStepName initStep = iota
	initStepVersion
	initStepTemplate
	initStepComplete
)

// NewInitWizard creates a new init wizard. defaultName prefills the title.
func NewInitWizard(targetDir, defaultName string, templates []TemplateInfo) InitWizard {
	if targetDir == "" {
		targetDir = "."
	}

	name := components.NewTextField("Course title", "My course").WithRequired(true).WithValue(defaultName)
	name.Focus()

	var versionOpts []components.Option
	for _, v := range scormpack.SupportedVersions() {
		versionOpts = append(versionOpts, components.Option{
			Label:       v.DisplayName(),
			Description: strings.Join(v.Aliases(), ", "),
			Value:       v.String(),
		})
	}

	var templateOpts []components.Option
	for _, t := range templates {
		templateOpts = append(templateOpts, components.Option{Label: t.Name, Description: t.Description, Value: t.Name})
	}

	return InitWizard{
		step:      initStepName,
		name:      name,
		versions:  components.NewSelector("Select a SCORM version", versionOpts),
		templates: components.NewSelector("Select a template", templateOpts),
		targetDir: targetDir,
		width:     80,
		height:    24,
		keys:      tui.DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (w InitWizard) Init() tea.Cmd {
	return w.name.Init()
}

// Update implements tea.Model.
func (w InitWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if key.Matches(msg, w.keys.Quit) {
			return w.cancel()
		}

		switch w.step {
		case initStepName:
			return w.updateName(msg)
		case initStepVersion, initStepTemplate:
			return w.updateList(msg)
		case initStepComplete:
			return w.updateComplete(msg)
		}
	}

	if w.step == initStepName {
		var cmd tea.Cmd
		w.name, cmd = w.name.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w InitWizard) cancel() (tea.Model, tea.Cmd) {
	w.result.Cancelled = true
	return w, tea.Quit
}

func (w InitWizard) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Select):
		if err := w.name.Validate(); err != nil {
			return w, nil
		}
		w.name.Blur()
		w.result.Name = w.name.Value()
		w.step = initStepVersion
		return w, nil
	case key.Matches(msg, w.keys.Back):
		return w.cancel()
	}

	var cmd tea.Cmd
	w.name, cmd = w.name.Update(msg)
	return w, cmd
}

// updateList drives the selector of the current step and advances once an
// option is submitted.
func (w InitWizard) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.QuitList):
		return w.cancel()
	case key.Matches(msg, w.keys.Back):
		if w.step == initStepVersion {
			w.step = initStepName
			return w, w.name.Focus()
		}
		w.step = initStepVersion
		w.versions = w.versions.Reset()
		return w, nil
	}

	sel := &w.versions
	if w.step == initStepTemplate {
		sel = &w.templates
	}

	*sel, _ = sel.Update(msg)
	if sel.Submitted() {
		w.step++
	}
	return w, nil
}

func (w InitWizard) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Select):
		v, err := scormpack.NormalizeVersion(w.versions.Value())
		if err != nil {
			return w.cancel()
		}
		w.result.Version = v
		w.result.Template = w.templates.Value()
		w.result.TargetDir = w.targetDir
		return w, tea.Quit
	case key.Matches(msg, w.keys.Back):
		w.step = initStepTemplate
		w.templates = w.templates.Reset()
	}
	return w, nil
}

// View implements tea.Model.
func (w InitWizard) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("scormpack init - Course Setup"))
	b.WriteString("\n")

	switch w.step {
	case initStepName:
		b.WriteString(w.name.View())
		b.WriteString("\n")
		b.WriteString(tui.HelpStyle.Render(w.keys.InputHelpText()))
	case initStepVersion:
		b.WriteString(w.versions.View())
		b.WriteString(tui.HelpStyle.Render(w.keys.HelpText()))
	case initStepTemplate:
		b.WriteString(w.templates.View())
		b.WriteString(tui.HelpStyle.Render(w.keys.HelpText()))
	case initStepComplete:
		b.WriteString(w.viewComplete())
	}

	return b.String()
}

func (w InitWizard) viewComplete() string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render(tui.SymbolCheck + " Ready to create course"))
	b.WriteString("\n\n")

	absPath, _ := filepath.Abs(w.targetDir)
	b.WriteString(fmt.Sprintf("Directory: %s\n", absPath))
	b.WriteString(fmt.Sprintf("Title:     %s\n", w.result.Name))
	if opt := w.versions.SelectedOption(); opt != nil {
		b.WriteString(fmt.Sprintf("Version:   %s\n", opt.Label))
	}
	b.WriteString(fmt.Sprintf("Template:  %s\n", w.templates.Value()))

	b.WriteString(tui.HelpStyle.Render("\nenter create course • esc back • ctrl+c cancel"))

	return b.String()
}

// Result returns the wizard result.
func (w InitWizard) Result() InitResult {
	return w.result
}

// RunInitWizard executes the init wizard.
func RunInitWizard(targetDir, defaultName string) (InitResult, error) {
	templates := DefaultTemplates()
	if len(templates) == 0 {
		return InitResult{Cancelled: true}, fmt.Errorf("no templates available")
	}

	wizard := NewInitWizard(targetDir, defaultName, templates)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return InitResult{Cancelled: true}, err
	}

	return model.(InitWizard).Result(), nil
}
