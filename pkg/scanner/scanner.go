package scanner

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

// Lister 列出目录的直接文件项（不递归）
type Lister struct {
	Fs afero.Fs
}

func NewLister(fs afero.Fs) *Lister {
	return &Lister{Fs: fs}
}

// ListFiles 返回目录中所有非目录项的完整路径，按目录列举顺序
// 顺序在多次运行间不保证稳定
func (l *Lister) ListFiles(dir string) ([]string, error) {
	entries, err := afero.ReadDir(l.Fs, dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	logger.Get().Debug().Msgf("目录 %s 中找到 %d 个顶层文件", dir, len(files))
	return files, nil
}

// Walk 递归遍历目录下的所有文件，遍历错误会被跳过
// 用于报告中的目录树渲染
func (l *Lister) Walk(root string, callback func(path string, info os.FileInfo) error) error {
	return afero.Walk(l.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if info.IsDir() {
			return nil
		}

		return callback(path, info)
	})
}

// CountFiles 统计多个目录中的顶层文件总数
func (l *Lister) CountFiles(dirs []string) (int, error) {
	logger.Get().Debug().Msgf("开始统计文件数量，共 %d 个目录", len(dirs))

	count := 0
	for _, dir := range dirs {
		files, err := l.ListFiles(dir)
		if err != nil {
			logger.Get().Error().Err(err).Msgf("扫描目录失败: %s", dir)
			return 0, err
		}
		count += len(files)
	}

	return count, nil
}
