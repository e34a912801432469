package history

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/internal"
)

func newTestStore() *Store {
	fs := afero.NewMemMapFs()
	return NewStore(fs, "/state/organization_history.json", "/state/timeline.txt")
}

func testBatch(kind internal.OperationKind) *internal.OperationBatch {
	return &internal.OperationBatch{
		ID:        "batch-1",
		Timestamp: time.Date(2024, time.May, 1, 14, 30, 0, 0, time.UTC),
		Kind:      kind,
		SourceDir: "/src",
		TargetDir: "/src",
		Operations: []internal.MoveRecord{
			{Operation: "move", Source: "/src/a.jpg", Destination: "/src/images/a.jpg"},
			{Operation: "move", Source: "/src/b.txt", Destination: "/src/documents/b.txt"},
		},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	store := newTestStore()
	batch := testBatch(internal.KindOrganizeByType)

	if err := store.Save(batch); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := store.Load()
	if loaded == nil {
		t.Fatal("Expected batch, got nil")
	}

	if loaded.ID != batch.ID {
		t.Errorf("Expected ID %s, got %s", batch.ID, loaded.ID)
	}
	if loaded.Kind != internal.KindOrganizeByType {
		t.Errorf("Expected kind %s, got %s", internal.KindOrganizeByType, loaded.Kind)
	}
	if len(loaded.Operations) != 2 {
		t.Errorf("Expected 2 operations, got %d", len(loaded.Operations))
	}
	if loaded.Operations[0].Destination != "/src/images/a.jpg" {
		t.Errorf("Unexpected destination: %s", loaded.Operations[0].Destination)
	}
}

func TestStore_Load_Missing(t *testing.T) {
	store := newTestStore()

	if batch := store.Load(); batch != nil {
		t.Errorf("Expected nil for missing history file, got %+v", batch)
	}
}

func TestStore_Load_Corrupt(t *testing.T) {
	store := newTestStore()

	if err := afero.WriteFile(store.Fs, store.HistoryPath, []byte("{not json"), 0644); err != nil {
		t.Fatalf("写入损坏文件失败: %v", err)
	}

	// 损坏的历史文件按空历史处理，不报错
	if batch := store.Load(); batch != nil {
		t.Errorf("Expected nil for corrupt history file, got %+v", batch)
	}
}

func TestStore_SingleSlot(t *testing.T) {
	store := newTestStore()

	first := testBatch(internal.KindOrganizeByType)
	first.ID = "first"
	second := testBatch(internal.KindOrganizeByType)
	second.ID = "second"

	if err := store.Save(first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := store.Load()
	if loaded == nil {
		t.Fatal("Expected batch, got nil")
	}
	if loaded.ID != "second" {
		t.Errorf("Expected second batch only, got %s", loaded.ID)
	}
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore()

	if err := store.Save(testBatch(internal.KindOrganizeByType)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if batch := store.Load(); batch != nil {
		t.Errorf("Expected nil after Clear(), got %+v", batch)
	}

	// 清空后文件仍是合法 JSON（空数组）
	data, err := afero.ReadFile(store.Fs, store.HistoryPath)
	if err != nil {
		t.Fatalf("读取历史文件失败: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("Expected empty array, got %s", data)
	}
}

func TestStore_AppendTimeline(t *testing.T) {
	store := newTestStore()
	batch := testBatch(internal.KindOrganizeByType)

	if err := store.AppendTimeline(batch); err != nil {
		t.Fatalf("AppendTimeline() error = %v", err)
	}

	data, err := afero.ReadFile(store.Fs, store.TimelinePath)
	if err != nil {
		t.Fatalf("读取时间线失败: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "Organization Timeline") {
		t.Error("Expected timeline header on first write")
	}
	if !strings.Contains(content, "ORGANIZE") {
		t.Error("Expected ORGANIZE entry")
	}
	if !strings.Contains(content, "Method: organize_by_type") {
		t.Error("Expected method line")
	}
	if !strings.Contains(content, "Files organized: 2") {
		t.Error("Expected file count line")
	}

	// 第二次追加不重复写标题
	undo := testBatch(internal.KindUndo)
	undo.Operations = nil
	if err := store.AppendTimeline(undo); err != nil {
		t.Fatalf("AppendTimeline() error = %v", err)
	}

	data, _ = afero.ReadFile(store.Fs, store.TimelinePath)
	content = string(data)

	if strings.Count(content, "Organization Timeline") != 1 {
		t.Error("Expected a single timeline header")
	}
	if !strings.Contains(content, "UNDO") {
		t.Error("Expected UNDO entry")
	}
	if !strings.Contains(content, "Restored files to original location") {
		t.Error("Expected restore message")
	}
}
