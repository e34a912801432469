package internal

import "time"

// 操作类型
type OperationKind string

const (
	KindOrganizeByType OperationKind = "organize_by_type"
	KindOrganizeByDate OperationKind = "organize_by_date"
	KindUndo           OperationKind = "undo"
)

// MoveRecord 单次文件移动的记录，创建后不再修改
type MoveRecord struct {
	Operation   string `json:"operation"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Hash        string `json:"hash,omitempty"`
}

// OperationBatch 一次整理或撤销操作的完整记录
// 历史记录文件中最多只保留一个批次（单槽历史）
type OperationBatch struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Kind       OperationKind `json:"type"`
	SourceDir  string        `json:"source_dir"`
	TargetDir  string        `json:"target_dir"`
	Operations []MoveRecord  `json:"operations"`
}

// OrganizeStats 整理操作的统计信息
type OrganizeStats struct {
	TotalFiles int // 源目录中的顶层文件数
	Moved      int // 已移动的文件数
	Renamed    int // 因目标冲突而重命名的文件数
	Detected   int // 通过内容检测确定分类的文件数
	Hashed     int // 已计算哈希的文件数
}

// UndoResult 撤销操作的逐项结果
type UndoResult struct {
	Restored    int      // 已恢复的文件数
	Skipped     []string // 目标位置已不存在而跳过的记录
	Failed      []string // 恢复失败的记录
	RemovedDirs int      // 清理的空目录数
}
