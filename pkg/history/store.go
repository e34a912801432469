package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

// Store 持久化的操作日志
// 历史记录文件只保留最近一次整理的批次（单槽），时间线文件只追加不覆盖
type Store struct {
	Fs           afero.Fs
	HistoryPath  string
	TimelinePath string
}

func NewStore(fs afero.Fs, historyPath, timelinePath string) *Store {
	return &Store{
		Fs:           fs,
		HistoryPath:  historyPath,
		TimelinePath: timelinePath,
	}
}

// Load 读取当前保存的批次
// 文件缺失、无法读取或内容损坏时返回 nil，不会阻塞后续操作
func (s *Store) Load() *internal.OperationBatch {
	data, err := afero.ReadFile(s.Fs, s.HistoryPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Get().Warn().Err(err).Msgf("读取历史记录失败，按空历史处理: %s", s.HistoryPath)
		}
		return nil
	}

	var batches []internal.OperationBatch
	if err := json.Unmarshal(data, &batches); err != nil {
		logger.Get().Warn().Err(err).Msgf("历史记录文件损坏，按空历史处理: %s", s.HistoryPath)
		return nil
	}

	if len(batches) == 0 {
		return nil
	}

	return &batches[0]
}

// Save 覆盖保存批次（单槽）
func (s *Store) Save(batch *internal.OperationBatch) error {
	batches := []internal.OperationBatch{}
	if batch != nil {
		batches = append(batches, *batch)
	}

	data, err := json.MarshalIndent(batches, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化历史记录失败: %w", err)
	}

	if err := s.Fs.MkdirAll(filepath.Dir(s.HistoryPath), 0755); err != nil {
		return fmt.Errorf("创建历史记录目录失败: %w", err)
	}

	if err := afero.WriteFile(s.Fs, s.HistoryPath, data, 0644); err != nil {
		return fmt.Errorf("写入历史记录失败: %w", err)
	}

	logger.Get().Debug().Msgf("历史记录已保存: %s", s.HistoryPath)
	return nil
}

// Clear 清空历史记录（写入空批次列表）
func (s *Store) Clear() error {
	return s.Save(nil)
}
