package hasher

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
)

func TestHashAll(t *testing.T) {
	fs := afero.NewMemMapFs()

	var paths []string
	for i := 0; i < 20; i++ {
		path := fmt.Sprintf("/data/file%d.txt", i)
		content := fmt.Sprintf("content-%d", i)
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
		paths = append(paths, path)
	}

	hashes := HashAll(fs, paths, 4)

	if len(hashes) != len(paths) {
		t.Errorf("Expected %d hashes, got %d", len(paths), len(hashes))
	}

	// 并发计算的结果必须与串行计算一致
	for _, path := range paths {
		expected, err := Calculate(fs, path)
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if hashes[path] != Format(expected) {
			t.Errorf("Hash mismatch for %s: got %s, want %s", path, hashes[path], Format(expected))
		}
	}
}

func TestHashAll_Empty(t *testing.T) {
	fs := afero.NewMemMapFs()

	hashes := HashAll(fs, nil, 4)
	if len(hashes) != 0 {
		t.Errorf("Expected empty result, got %d entries", len(hashes))
	}
}

func TestHashAll_SkipsUnreadable(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "/ok.txt", []byte("data"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	hashes := HashAll(fs, []string{"/ok.txt", "/missing.txt"}, 2)

	if len(hashes) != 1 {
		t.Errorf("Expected 1 hash, got %d", len(hashes))
	}
	if _, ok := hashes["/ok.txt"]; !ok {
		t.Error("Expected hash for readable file")
	}
}

func TestPool_StartClose(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "/x.txt", []byte("x"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	pool := NewPool(fs, 2)
	if err := pool.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	go func() {
		pool.AddTask(HashTask{Path: "/x.txt"})
		pool.Close()
	}()

	count := 0
	for result := range pool.Results() {
		if result.Error != nil {
			t.Errorf("Unexpected error: %v", result.Error)
		}
		count++
	}

	if count != 1 {
		t.Errorf("Expected 1 result, got %d", count)
	}
}
