package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	switch m.state {
	case StateMenu:
		return m.menuView()
	case StateSourceInput:
		return m.sourceView()
	case StateDestInput:
		return m.destView()
	case StateRunning:
		return m.runningView()
	case StateDone:
		return m.doneView()
	default:
		return "未知状态"
	}
}

func (m *model) menuView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🗂  文件整理工具") + "\n\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")
	b.WriteString(m.menuList.View() + "\n\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("Enter 确认选择，q 或 Ctrl+C 退出") + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *model) sourceView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🗂  "+m.actionTitle()) + "\n\n")
	b.WriteString(labelStyle.Render("输入源目录路径：") + "\n")
	b.WriteString(focusedStyle.Render(m.sourceInput.View()) + "\n\n")
	b.WriteString(hintStyle.Render("Enter 确认，Esc 返回菜单") + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *model) destView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🗂  "+m.actionTitle()) + "\n\n")
	b.WriteString(labelStyle.Render("源目录：") + textStyle.Render(m.sourceDir) + "\n\n")
	b.WriteString(labelStyle.Render("输入目标目录（留空表示在源目录内整理）：") + "\n")
	b.WriteString(focusedStyle.Render(m.destInput.View()) + "\n\n")
	b.WriteString(hintStyle.Render("Enter 开始整理，Esc 返回上一步") + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *model) runningView() string {
	var b strings.Builder

	if m.action == ActionUndo {
		b.WriteString(titleStyle.Render("🔄 正在撤销...") + "\n\n")
	} else {
		b.WriteString(titleStyle.Render("🔄 正在整理文件...") + "\n\n")
	}
	b.WriteString(m.spinner.View() + "  处理中，请稍候...\n")

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

func (m *model) doneView() string {
	var b strings.Builder

	switch {
	case m.err != nil:
		b.WriteString(errorTitleStyle.Render("❌ 操作失败") + "\n\n")
		b.WriteString(m.err.Error() + "\n\n")
	case m.noHistory:
		b.WriteString(successTitleStyle.Render("ℹ️  没有可撤销的整理记录") + "\n\n")
	case m.undoResult != nil:
		b.WriteString(successTitleStyle.Render("✅ 撤销完成！") + "\n\n")
		b.WriteString(statsBoxStyle.Render(m.undoResult.String()) + "\n\n")
	case m.stats != nil:
		b.WriteString(successTitleStyle.Render("✅ 整理完成！") + "\n\n")
		b.WriteString(statsBoxStyle.Render(m.stats.String()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("按 Enter 返回菜单，q 或 Ctrl+C 退出") + "\n")

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

func (m *model) actionTitle() string {
	switch m.action {
	case ActionOrganizeByDate:
		return "按修改日期整理"
	case ActionUndo:
		return "撤销最近一次整理"
	default:
		return "按文件类型整理"
	}
}
