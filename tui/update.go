package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TonyNguyenVn17/files-organizor/app"
	"github.com/TonyNguyenVn17/files-organizor/config"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.menuList.SetSize(msg.Width-4, 12)
		return m, nil

	case organizeDoneMsg:
		m.state = StateDone
		m.stats = msg.stats
		return m, nil

	case undoDoneMsg:
		m.state = StateDone
		m.undoResult = msg.result
		m.noHistory = msg.result == nil
		return m, nil

	case errMsg:
		m.state = StateDone
		m.err = msg
		return m, nil

	case spinner.TickMsg:
		if m.state == StateRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateComponents(msg)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateMenu:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			item, ok := m.menuList.SelectedItem().(actionItem)
			if !ok {
				return m, nil
			}
			m.action = item.action
			if m.action == ActionUndo {
				m.state = StateRunning
				return m, tea.Batch(m.runUndo(), m.spinner.Tick)
			}
			m.state = StateSourceInput
			m.sourceInput.Focus()
			return m, nil
		}

	case StateSourceInput:
		if msg.String() == "esc" {
			m.state = StateMenu
			m.sourceInput.Blur()
			return m, nil
		}
		if msg.String() == "enter" {
			source := strings.TrimSpace(m.sourceInput.Value())
			if source == "" {
				return m, nil
			}
			m.sourceDir = expandUserPath(source)
			m.sourceInput.Blur()
			m.state = StateDestInput
			m.destInput.Focus()
			return m, nil
		}

	case StateDestInput:
		if msg.String() == "esc" {
			m.state = StateSourceInput
			m.destInput.Blur()
			m.sourceInput.Focus()
			return m, nil
		}
		if msg.String() == "enter" {
			dest := strings.TrimSpace(m.destInput.Value())
			if dest != "" {
				dest = expandUserPath(dest)
			}
			m.destDir = dest
			m.destInput.Blur()
			m.state = StateRunning
			return m, tea.Batch(m.runOrganize(), m.spinner.Tick)
		}

	case StateDone:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			// 回到菜单，保留配置但清空上一次的结果
			next := initialModel()
			*m = next
			return m, nil
		}
	}

	return m.updateComponents(msg)
}

func (m *model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.state {
	case StateMenu:
		m.menuList, cmd = m.menuList.Update(msg)
		cmds = append(cmds, cmd)
	case StateSourceInput:
		m.sourceInput, cmd = m.sourceInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateDestInput:
		m.destInput, cmd = m.destInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// runOrganize 在后台执行整理操作
func (m *model) runOrganize() tea.Cmd {
	sourceDir := m.sourceDir
	destDir := m.destDir
	byDate := m.action == ActionOrganizeByDate

	return func() tea.Msg {
		cfg := config.Get()

		opts := &app.OrganizeOptions{
			SourceDir: sourceDir,
			DestDir:   destDir,
			ByDate:    byDate,
			Detect:    cfg.Organize.Detect,
			Verify:    cfg.Organize.Verify,
			Report:    cfg.Organize.Report,
			LogLevel:  cfg.Logging.Level,
			LogFile:   cfg.Logging.File,
		}

		_, stats, err := app.RunOrganize(opts)
		if err != nil {
			return errMsg(err)
		}
		return organizeDoneMsg{stats: stats}
	}
}

// runUndo 在后台执行撤销操作
func (m *model) runUndo() tea.Cmd {
	return func() tea.Msg {
		cfg := config.Get()

		result, err := app.RunUndo(false, cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			return errMsg(err)
		}
		return undoDoneMsg{result: result}
	}
}

// expandUserPath 展开用户输入路径中的 ~
func expandUserPath(path string) string {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
