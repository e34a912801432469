package internal

import (
	"bytes"
	"fmt"
)

func (s *OrganizeStats) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== 整理统计 ==========\n")
	buf.WriteString(fmt.Sprintf("顶层文件数: %d\n", s.TotalFiles))
	buf.WriteString(fmt.Sprintf("已移动: %d\n", s.Moved))
	buf.WriteString(fmt.Sprintf("冲突重命名: %d\n", s.Renamed))
	if s.Detected > 0 {
		buf.WriteString(fmt.Sprintf("按内容识别: %d\n", s.Detected))
	}
	if s.Hashed > 0 {
		buf.WriteString(fmt.Sprintf("已记录哈希: %d\n", s.Hashed))
	}
	buf.WriteString("============================")

	return buf.String()
}

func (r *UndoResult) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== 撤销统计 ==========\n")
	buf.WriteString(fmt.Sprintf("已恢复: %d\n", r.Restored))
	buf.WriteString(fmt.Sprintf("已跳过: %d\n", len(r.Skipped)))
	buf.WriteString(fmt.Sprintf("失败: %d\n", len(r.Failed)))
	buf.WriteString(fmt.Sprintf("清理空目录: %d\n", r.RemovedDirs))
	buf.WriteString("============================")

	return buf.String()
}
