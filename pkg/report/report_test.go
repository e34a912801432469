package report

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/internal"
)

func TestWriter_Write(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "/dst/images/a.jpg", []byte("x"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	batch := &internal.OperationBatch{
		ID:        "batch-1",
		Timestamp: time.Date(2024, time.May, 1, 14, 30, 0, 0, time.UTC),
		Kind:      internal.KindOrganizeByType,
		SourceDir: "/src",
		TargetDir: "/dst",
		Operations: []internal.MoveRecord{
			{Operation: "move", Source: "/src/a.jpg", Destination: "/dst/images/a.jpg"},
		},
	}

	writer := NewWriter(fs)
	if err := writer.Write(batch); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	summary, err := afero.ReadFile(fs, filepath.Join("/dst", SummaryFileName))
	if err != nil {
		t.Fatalf("读取摘要报告失败: %v", err)
	}
	if !strings.Contains(string(summary), "Action: Organize By Type") {
		t.Error("Expected action line in summary")
	}
	if !strings.Contains(string(summary), "Files Organized: 1") {
		t.Error("Expected file count in summary")
	}

	details, err := afero.ReadFile(fs, filepath.Join("/dst", DetailsFileName))
	if err != nil {
		t.Fatalf("读取明细报告失败: %v", err)
	}
	content := string(details)

	if !strings.Contains(content, "Current Folder Structure:") {
		t.Error("Expected folder structure section")
	}
	if !strings.Contains(content, "📁 images/") {
		t.Error("Expected images folder in tree")
	}
	if !strings.Contains(content, "📄 a.jpg") {
		t.Error("Expected file entry in tree")
	}
	if !strings.Contains(content, "• a.jpg → "+filepath.Join("images", "a.jpg")) {
		t.Error("Expected movement line")
	}
}

func TestWriter_Write_Undo(t *testing.T) {
	fs := afero.NewMemMapFs()

	batch := &internal.OperationBatch{
		ID:         "undo-1",
		Timestamp:  time.Now(),
		Kind:       internal.KindUndo,
		SourceDir:  "/src",
		TargetDir:  "/dst",
		Operations: []internal.MoveRecord{},
	}

	writer := NewWriter(fs)
	if err := writer.Write(batch); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	details, err := afero.ReadFile(fs, filepath.Join("/dst", DetailsFileName))
	if err != nil {
		t.Fatalf("读取明细报告失败: %v", err)
	}
	if !strings.Contains(string(details), "Files restored to original location") {
		t.Error("Expected restore message for undo report")
	}
}

func TestTitleKind(t *testing.T) {
	testCases := []struct {
		kind     internal.OperationKind
		expected string
	}{
		{internal.KindOrganizeByType, "Organize By Type"},
		{internal.KindOrganizeByDate, "Organize By Date"},
		{internal.KindUndo, "Undo"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			if got := titleKind(tc.kind); got != tc.expected {
				t.Errorf("titleKind(%s) = %q, want %q", tc.kind, got, tc.expected)
			}
		})
	}
}
