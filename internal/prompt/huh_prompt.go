package prompt

import (
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// maxVisibleOptions caps the select height so long palettes scroll.
const maxVisibleOptions = 16

// HuhPrompter implements Prompter using the charmbracelet/huh library.
type HuhPrompter struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewHuhPrompter creates a new huh-based prompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) Select(title string, description func() string, options []Option) (string, error) {
	var result string

	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		opts[i] = huh.NewOption(opt.Label, opt.Value)
	}

	model := &refreshingForm{}

	sel := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&result)
	if description != nil {
		sel = sel.DescriptionFunc(description, &model.refreshes)
	}
	if len(opts) > maxVisibleOptions {
		sel = sel.Height(maxVisibleOptions + 2)
	}

	form := huh.NewForm(huh.NewGroup(sel)).WithShowHelp(false)
	form.SubmitCmd = tea.Quit
	form.CancelCmd = tea.Interrupt
	model.form = form

	program := tea.NewProgram(model)
	p.setProgram(program)
	defer p.setProgram(nil)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	if form.State == huh.StateAborted {
		return "", ErrAborted
	}
	return result, nil
}

// Refresh sends a redraw request to the running prompt program.
func (p *HuhPrompter) Refresh() {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Send(refreshMsg{})
	}
}

func (p *HuhPrompter) setProgram(program *tea.Program) {
	p.mu.Lock()
	p.program = program
	p.mu.Unlock()
}

type refreshMsg struct{}

// refreshingForm wraps a form so that each refreshMsg changes the binding of
// its DescriptionFunc, which makes huh evaluate the description again.
// refreshes is only touched from the program goroutine.
type refreshingForm struct {
	form      *huh.Form
	refreshes uint64
}

func (m *refreshingForm) Init() tea.Cmd {
	return m.form.Init()
}

func (m *refreshingForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(refreshMsg); ok {
		m.refreshes++
	}
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	return m, cmd
}

func (m *refreshingForm) View() string {
	return m.form.View()
}
