package actions

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type OpenURLSuccessMsg struct {
	Status string
	URL    string
	Opened bool
}

type OpenURLErrorMsg struct {
	URL string
	Err error
}

type ClearStatusMsg struct {
	ID int
}

// RevealTickMsg advances the hero text reveal started for Key.
type RevealTickMsg struct {
	Key int
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened tracking page in browser", URL: url, Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, tracking link copied to clipboard", URL: url}
			}
		}
		return OpenURLErrorMsg{URL: url, Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func ClearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

func RevealTickCmd(key int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return RevealTickMsg{Key: key}
	})
}
