package session

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyTabActivity = "1"
	KeyTabDatabase = "2"
	KeyTabLocks    = "3"
	KeyTabIO       = "4"
	KeyTabStmts    = "5"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
)

// tabKeys maps the numeric tab-select keys onto tabs.
var tabKeys = map[string]Tab{
	KeyTabActivity: TabActivity,
	KeyTabDatabase: TabDatabase,
	KeyTabLocks:    TabLocks,
	KeyTabIO:       TabIO,
	KeyTabStmts:    TabStatements,
}

// HandleKeyMsg processes keyboard input and applies at most one state
// transition. Returns true if the key was handled, false otherwise.
// The quit transition is terminal: nothing else is processed afterwards.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeySelectNext, KeySelectNextJ:
		m.state.MoveDown()
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		m.state.MoveUp()
		return true, nil
	}

	if tab, ok := tabKeys[key]; ok {
		return true, m.SwitchTab(tab)
	}

	return false, nil
}
