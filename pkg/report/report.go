package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

const (
	SummaryFileName = "organization_summary.txt"
	DetailsFileName = "organization_details.txt"
)

// Writer 在目标目录中生成人类可读的整理报告
// 报告只写不读，从不被解析
type Writer struct {
	Fs afero.Fs
}

func NewWriter(fs afero.Fs) *Writer {
	return &Writer{Fs: fs}
}

// Write 在目标目录写入摘要和明细两份报告
func (w *Writer) Write(batch *internal.OperationBatch) error {
	if err := w.writeSummary(batch); err != nil {
		return err
	}
	return w.writeDetails(batch)
}

func (w *Writer) writeSummary(batch *internal.OperationBatch) error {
	var buf bytes.Buffer

	buf.WriteString("Organization Summary\n")
	buf.WriteString("==================\n\n")
	buf.WriteString(fmt.Sprintf("Action: %s\n", titleKind(batch.Kind)))
	buf.WriteString(fmt.Sprintf("When: %s\n", batch.Timestamp.Format(internal.DisplayTimeFormat)))
	buf.WriteString(fmt.Sprintf("Source: %s\n", batch.SourceDir))
	buf.WriteString(fmt.Sprintf("Target: %s\n", batch.TargetDir))
	if batch.Kind != internal.KindUndo {
		buf.WriteString(fmt.Sprintf("Files Organized: %d\n", len(batch.Operations)))
	}
	buf.WriteString(strings.Repeat("-", 50) + "\n\n")

	path := filepath.Join(batch.TargetDir, SummaryFileName)
	if err := afero.WriteFile(w.Fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("写入摘要报告失败: %w", err)
	}

	logger.Get().Debug().Msgf("摘要报告已写入: %s", path)
	return nil
}

func (w *Writer) writeDetails(batch *internal.OperationBatch) error {
	var buf bytes.Buffer

	buf.WriteString("Organization Details\n")
	buf.WriteString("===================\n\n")
	buf.WriteString(fmt.Sprintf("Action: %s\n", titleKind(batch.Kind)))
	buf.WriteString(fmt.Sprintf("Time: %s\n", batch.Timestamp.Format(internal.DisplayTimeFormat)))
	buf.WriteString(fmt.Sprintf("Source: %s\n", batch.SourceDir))
	buf.WriteString(fmt.Sprintf("Target: %s\n\n", batch.TargetDir))

	if batch.Kind != internal.KindUndo {
		buf.WriteString("Current Folder Structure:\n")
		buf.WriteString("----------------------\n\n")
		w.renderTree(&buf, batch.TargetDir)

		buf.WriteString("\nFile Movements:\n")
		buf.WriteString("--------------\n")
		for _, op := range batch.Operations {
			source := filepath.Base(op.Source)
			dest, err := filepath.Rel(batch.TargetDir, op.Destination)
			if err != nil {
				dest = op.Destination
			}
			buf.WriteString(fmt.Sprintf("• %s → %s\n", source, dest))
		}
	} else {
		buf.WriteString("Files restored to original location\n")
	}
	buf.WriteString("\n" + strings.Repeat("=", 50) + "\n\n")

	path := filepath.Join(batch.TargetDir, DetailsFileName)
	if err := afero.WriteFile(w.Fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("写入明细报告失败: %w", err)
	}

	logger.Get().Debug().Msgf("明细报告已写入: %s", path)
	return nil
}

// renderTree 渲染目标目录的树形结构，报告文件自身不计入
func (w *Writer) renderTree(buf *bytes.Buffer, targetDir string) {
	err := afero.Walk(w.Fs, targetDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(targetDir, path)
		if relErr != nil {
			return nil
		}

		level := 0
		if rel != "." {
			level = strings.Count(rel, string(filepath.Separator)) + 1
		}
		indent := strings.Repeat("    ", level)

		folder := filepath.Base(path)
		buf.WriteString(fmt.Sprintf("%s└── 📁 %s/\n", indent, folder))

		entries, readErr := afero.ReadDir(w.Fs, path)
		if readErr != nil {
			return nil
		}

		wrote := false
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if entry.Name() == SummaryFileName || entry.Name() == DetailsFileName {
				continue
			}
			buf.WriteString(fmt.Sprintf("%s    ├── 📄 %s\n", indent, entry.Name()))
			wrote = true
		}
		if wrote {
			buf.WriteString("\n")
		}

		return nil
	})
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("渲染目录树失败: %s", targetDir)
	}
}

// titleKind 将操作类型转为报告中的标题形式，如 organize_by_type -> Organize By Type
func titleKind(kind internal.OperationKind) string {
	words := strings.Split(string(kind), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
