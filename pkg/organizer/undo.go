package organizer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/hasher"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

// Undo 撤销最近一次整理操作
// 没有可撤销的历史时返回 (nil, nil)，不做任何文件系统变更
// 撤销是尽力而为的：目标位置已消失的记录被跳过，单条失败不中止其余记录
func (o *Organizer) Undo() (*internal.UndoResult, error) {
	batch := o.Store.Load()
	if batch == nil {
		logger.Get().Info().Msg("没有可撤销的整理记录")
		return nil, nil
	}

	logger.Get().Info().Msgf("开始撤销: %s (%d 条记录)", batch.ID, len(batch.Operations))

	result := &internal.UndoResult{}

	// 按相反顺序回放每条移动记录
	for i := len(batch.Operations) - 1; i >= 0; i-- {
		op := batch.Operations[i]

		exists, err := afero.Exists(o.Fs, op.Destination)
		if err != nil || !exists {
			// 文件已被移走或删除，跳过并记入结果
			logger.Get().Debug().Msgf("目标位置已不存在，跳过: %s", op.Destination)
			result.Skipped = append(result.Skipped, op.Destination)
			continue
		}

		if err := o.Fs.MkdirAll(filepath.Dir(op.Source), 0755); err != nil {
			logger.Get().Warn().Err(err).Msgf("恢复目录创建失败: %s", op.Source)
			result.Failed = append(result.Failed, op.Destination)
			continue
		}

		if err := o.moveRaw(op.Destination, op.Source); err != nil {
			logger.Get().Warn().Err(err).Msgf("恢复文件失败: %s", op.Destination)
			result.Failed = append(result.Failed, op.Destination)
			continue
		}

		result.Restored++
		o.verifyRestored(op)
	}

	// 自底向上清理整理时创建的空分类目录
	result.RemovedDirs = o.removeEmptyDirs(batch.TargetDir)

	// 清空单槽历史，撤销完成后没有可再撤销的批次
	if err := o.Store.Clear(); err != nil {
		return result, err
	}

	undoBatch := &internal.OperationBatch{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Kind:       internal.KindUndo,
		SourceDir:  batch.SourceDir,
		TargetDir:  batch.TargetDir,
		Operations: []internal.MoveRecord{},
	}

	if err := o.Store.AppendTimeline(undoBatch); err != nil {
		return result, err
	}

	if o.Catalog != nil {
		if err := o.Catalog.RecordBatch(undoBatch); err != nil {
			logger.Get().Warn().Err(err).Msg("写入移动台账失败")
		}
	}

	logger.Get().Info().Msgf("撤销完成: 恢复 %d 个文件，跳过 %d 个，失败 %d 个，清理 %d 个空目录",
		result.Restored, len(result.Skipped), len(result.Failed), result.RemovedDirs)
	return result, nil
}

// verifyRestored 对带哈希的记录在恢复后做一次校验，不一致只告警
func (o *Organizer) verifyRestored(op internal.MoveRecord) {
	if op.Hash == "" || !o.Verify {
		return
	}

	h, err := hasher.Calculate(o.Fs, op.Source)
	if err != nil {
		logger.Get().Warn().Err(err).Msgf("恢复后校验失败: %s", op.Source)
		return
	}
	if hasher.Format(h) != op.Hash {
		logger.Get().Warn().Msgf("文件内容与整理时不一致: %s", op.Source)
	}
}

// removeEmptyDirs 自底向上删除 root 下所有空目录，root 本身保留
// 删除失败或目录非空时静默跳过，返回成功删除的目录数
func (o *Organizer) removeEmptyDirs(root string) int {
	var dirs []string

	err := afero.Walk(o.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("遍历目标目录失败: %s", root)
		return 0
	}

	// 深目录优先，子目录清空后父目录也可能变空
	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(filepath.Separator)) > strings.Count(dirs[j], string(filepath.Separator))
	})

	removed := 0
	for _, dir := range dirs {
		entries, err := afero.ReadDir(o.Fs, dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := o.Fs.Remove(dir); err != nil {
			continue
		}
		logger.Get().Debug().Msgf("已删除空目录: %s", dir)
		removed++
	}

	return removed
}
