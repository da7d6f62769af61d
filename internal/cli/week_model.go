package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/service"
)

type weekKeyMap struct {
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Quit     key.Binding
}

func (k weekKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevWeek, k.NextWeek, k.Today, k.Quit}
}

func (k weekKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevWeek, k.NextWeek, k.Today, k.Quit}}
}

var defaultWeekKeys = weekKeyMap{
	PrevWeek: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous week")),
	NextWeek: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
	Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type weekLoadedMsg struct {
	view *service.WeekView
	err  error
}

// weekModel is the interactive week browser.
type weekModel struct {
	app    *App
	anchor time.Time
	keys   weekKeyMap
	help   help.Model

	view *service.WeekView
	err  error
}

func newWeekModel(app *App, anchor time.Time) weekModel {
	return weekModel{
		app:    app,
		anchor: anchor,
		keys:   defaultWeekKeys,
		help:   help.New(),
	}
}

func (m weekModel) loadWeek() tea.Cmd {
	anchor := m.anchor
	app := m.app
	return func() tea.Msg {
		view, err := app.Week.GetWeek(context.Background(), anchor, weekOptionsFromConfig(app))
		return weekLoadedMsg{view: view, err: err}
	}
}

func (m weekModel) Init() tea.Cmd {
	return m.loadWeek()
}

func (m weekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weekLoadedMsg:
		m.view, m.err = msg.view, msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevWeek):
			m.anchor = m.anchor.AddDate(0, 0, -7)
			return m, m.loadWeek()
		case key.Matches(msg, m.keys.NextWeek):
			m.anchor = m.anchor.AddDate(0, 0, 7)
			return m, m.loadWeek()
		case key.Matches(msg, m.keys.Today):
			m.anchor = time.Now()
			return m, m.loadWeek()
		}
	}
	return m, nil
}

func (m weekModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}
	if m.view == nil {
		return formatter.Dim("loading…") + "\n"
	}

	start := m.view.Layout.Days[0].Date
	end := m.view.Layout.Days[len(m.view.Layout.Days)-1].Date
	title := fmt.Sprintf("Week of %s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))

	return formatter.Header(title) + "\n" +
		renderWeekView(m.app, m.view) + "\n" +
		m.help.View(m.keys) + "\n"
}
