// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, timers and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-rush/internal/schedule"
)

// TaskMsg is sent when a scheduled task's timer expires.
type TaskMsg struct {
	Name  string
	Token schedule.Token
}

// taskCmd returns a Bubble Tea command that fires one timer for a task run.
func taskCmd(task *schedule.Task, token schedule.Token) tea.Cmd {
	name := task.Name()
	return tea.Tick(task.Interval(), func(_ time.Time) tea.Msg {
		return TaskMsg{Name: name, Token: token}
	})
}

// armTasks schedules the first timer of every run started since the last call.
func armTasks(tasks []*schedule.Task) tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range tasks {
		if token, ok := t.Arm(); ok {
			cmds = append(cmds, taskCmd(t, token))
		}
	}
	return tea.Batch(cmds...)
}

// findTask returns the task with the given name, or nil.
func findTask(tasks []*schedule.Task, name string) *schedule.Task {
	for _, t := range tasks {
		if t.Name() == name {
			return t
		}
	}
	return nil
}
