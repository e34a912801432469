package organizer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

// moveFile 将文件移动到目标目录，返回这次移动的可撤销记录
// 目标目录不存在时连同缺失的上级目录一并创建
func (o *Organizer) moveFile(src, destDir string) (internal.MoveRecord, bool, error) {
	if err := o.Fs.MkdirAll(destDir, 0755); err != nil {
		return internal.MoveRecord{}, false, fmt.Errorf("创建目录失败: %w", err)
	}

	destPath := filepath.Join(destDir, filepath.Base(src))
	destPath, renamed, err := o.uniquePath(destPath)
	if err != nil {
		return internal.MoveRecord{}, false, err
	}

	if err := o.moveRaw(src, destPath); err != nil {
		return internal.MoveRecord{}, false, err
	}

	logger.Get().Debug().Msgf("已移动: %s -> %s", src, destPath)

	return internal.MoveRecord{
		Operation:   "move",
		Source:      src,
		Destination: destPath,
	}, renamed, nil
}

// uniquePath 返回不与现有文件冲突的目标路径
// 冲突时在扩展名之前追加 _1、_2…，每次调用都重新检查存在性
func (o *Organizer) uniquePath(path string) (string, bool, error) {
	exists, err := afero.Exists(o.Fs, path)
	if err != nil {
		return "", false, fmt.Errorf("检查文件是否存在失败: %w", err)
	}
	if !exists {
		return path, false, nil
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		exists, err := afero.Exists(o.Fs, candidate)
		if err != nil {
			return "", false, fmt.Errorf("检查文件是否存在失败: %w", err)
		}
		if !exists {
			logger.Get().Debug().Msgf("文件名冲突，自动重命名: %s -> %s", path, candidate)
			return candidate, true, nil
		}
	}
}

// moveRaw 使用 rename 移动文件
// rename 失败（可能是跨卷移动）时尝试复制后删除
func (o *Organizer) moveRaw(src, dst string) error {
	if err := o.Fs.Rename(src, dst); err == nil {
		return nil
	} else {
		logger.Get().Debug().
			Err(err).
			Str("source", src).
			Str("destination", dst).
			Msg("直接重命名失败，尝试复制后删除")
	}

	sourceFile, err := o.Fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := o.Fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer destFile.Close()

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	if err := o.Fs.Remove(src); err != nil {
		return fmt.Errorf("删除原文件失败: %w", err)
	}

	return nil
}
