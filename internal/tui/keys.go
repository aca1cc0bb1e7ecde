package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Tab1        key.Binding
	Tab2        key.Binding
	Tab3        key.Binding
	Tab         key.Binding
	NewLog      key.Binding
	NewMeeting  key.Binding
	Refresh     key.Binding
	More        key.Binding
	Phase       key.Binding
	Category    key.Binding
	LogType     key.Binding
	ClearFilter key.Binding
	Comment     key.Binding
	Delete      key.Binding
	Help        key.Binding
	Enter       key.Binding
	Back        key.Binding
	Up          key.Binding
	Down        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "dashboard"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "timeline"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "schedule"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	NewLog: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "quick log"),
	),
	NewMeeting: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "meeting"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	More: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "load more"),
	),
	Phase: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "phase"),
	),
	Category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "category"),
	),
	LogType: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "log type"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all"),
	),
	Comment: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "comment"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.NewLog, k.NewMeeting, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3, k.Tab},
		{k.NewLog, k.NewMeeting, k.Refresh, k.More},
		{k.Phase, k.Category, k.LogType, k.ClearFilter},
		{k.Comment, k.Delete},
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}
