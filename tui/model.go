package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TonyNguyenVn17/files-organizor/internal"
)

type State int

const (
	StateMenu State = iota
	StateSourceInput
	StateDestInput
	StateRunning
	StateDone
)

type Action int

const (
	ActionOrganizeByType Action = iota
	ActionOrganizeByDate
	ActionUndo
)

type model struct {
	state       State
	action      Action
	sourceDir   string
	destDir     string
	menuList    list.Model
	sourceInput textinput.Model
	destInput   textinput.Model
	spinner     spinner.Model
	stats       *internal.OrganizeStats
	undoResult  *internal.UndoResult
	noHistory   bool
	err         error
}

func initialModel() model {
	menuList := list.New([]list.Item{
		actionItem{action: ActionOrganizeByType, title: "按文件类型整理", desc: "把顶层文件归入 images、documents 等分类目录"},
		actionItem{action: ActionOrganizeByDate, title: "按修改日期整理", desc: "把顶层文件按年-月归入子目录"},
		actionItem{action: ActionUndo, title: "撤销最近一次整理", desc: "把文件恢复到原位置并清理空分类目录"},
	}, list.NewDefaultDelegate(), 0, 12)

	menuList.Title = "请选择操作"
	menuList.SetShowStatusBar(false)
	menuList.SetFilteringEnabled(false)
	menuList.Styles.Title = titleStyle

	sourceInput := textinput.New()
	sourceInput.Placeholder = "请输入源目录路径（例如：~/Downloads）"
	sourceInput.Prompt = "> "
	sourceInput.PromptStyle = focusedPromptStyle
	sourceInput.TextStyle = textStyle

	destInput := textinput.New()
	destInput.Placeholder = "目标目录路径，留空表示在源目录内整理"
	destInput.Prompt = "> "
	destInput.PromptStyle = focusedPromptStyle
	destInput.TextStyle = textStyle

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		state:       StateMenu,
		menuList:    menuList,
		sourceInput: sourceInput,
		destInput:   destInput,
		spinner:     s,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type actionItem struct {
	action Action
	title  string
	desc   string
}

func (a actionItem) Title() string       { return a.title }
func (a actionItem) Description() string { return a.desc }
func (a actionItem) FilterValue() string { return a.title }
