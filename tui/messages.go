package tui

import (
	"github.com/TonyNguyenVn17/files-organizor/internal"
)

type organizeDoneMsg struct {
	stats *internal.OrganizeStats
}

type undoDoneMsg struct {
	result *internal.UndoResult
}

type errMsg error
