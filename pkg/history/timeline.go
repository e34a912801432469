package history

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

const timelineHeader = "Organization Timeline\n===================\n\n"

// AppendTimeline 向时间线文件追加一条人类可读的记录
// 时间线只追加、只写不读，从不被解析回放
func (s *Store) AppendTimeline(batch *internal.OperationBatch) error {
	if err := s.Fs.MkdirAll(filepath.Dir(s.TimelinePath), 0755); err != nil {
		return fmt.Errorf("创建时间线目录失败: %w", err)
	}

	var buf bytes.Buffer

	// 文件为空或不存在时先写入标题
	empty, err := s.timelineEmpty()
	if err != nil {
		return err
	}
	if empty {
		buf.WriteString(timelineHeader)
	}

	ts := batch.Timestamp.Format(internal.DisplayTimeFormat)
	if batch.Kind == internal.KindUndo {
		buf.WriteString(fmt.Sprintf("[%s] UNDO\n", ts))
		buf.WriteString(fmt.Sprintf("  └── Location: %s\n", batch.TargetDir))
		buf.WriteString("  └── Restored files to original location\n")
	} else {
		buf.WriteString(fmt.Sprintf("[%s] ORGANIZE\n", ts))
		buf.WriteString(fmt.Sprintf("  └── Method: %s\n", batch.Kind))
		buf.WriteString(fmt.Sprintf("  └── Files organized: %d\n", len(batch.Operations)))
		buf.WriteString(fmt.Sprintf("  └── Location: %s\n", batch.TargetDir))
	}
	buf.WriteString("\n")

	file, err := s.Fs.OpenFile(s.TimelinePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("打开时间线文件失败: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("写入时间线失败: %w", err)
	}

	logger.Get().Debug().Msgf("时间线已更新: %s", s.TimelinePath)
	return nil
}

func (s *Store) timelineEmpty() (bool, error) {
	info, err := s.Fs.Stat(s.TimelinePath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("检查时间线文件失败: %w", err)
	}
	return info.Size() == 0, nil
}
