package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestLister_ListFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/data"

	testFiles := []string{
		"file1.txt",
		"file2.jpg",
		".hidden_file",
	}

	for _, file := range testFiles {
		if err := afero.WriteFile(fs, filepath.Join(dir, file), []byte("test"), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}

	// 子目录中的文件不应出现在结果里
	if err := afero.WriteFile(fs, filepath.Join(dir, "sub", "nested.txt"), []byte("test"), 0644); err != nil {
		t.Fatalf("创建子目录文件失败: %v", err)
	}

	lister := NewLister(fs)
	files, err := lister.ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}

	if len(files) != len(testFiles) {
		t.Errorf("Expected %d files, got %d", len(testFiles), len(files))
	}

	for _, file := range files {
		if filepath.Dir(file) != dir {
			t.Errorf("Expected only direct entries, got %s", file)
		}
	}
}

func TestLister_ListFiles_MissingDir(t *testing.T) {
	lister := NewLister(afero.NewMemMapFs())

	_, err := lister.ListFiles("/no/such/dir")
	if err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestLister_CountFiles(t *testing.T) {
	fs := afero.NewMemMapFs()

	dirs := []string{"/a", "/b"}
	for _, dir := range dirs {
		for i := 0; i < 3; i++ {
			path := filepath.Join(dir, "file"+string(rune('0'+i))+".txt")
			if err := afero.WriteFile(fs, path, []byte("test"), 0644); err != nil {
				t.Fatalf("创建测试文件失败: %v", err)
			}
		}
	}

	lister := NewLister(fs)
	count, err := lister.CountFiles(dirs)
	if err != nil {
		t.Fatalf("CountFiles() error = %v", err)
	}

	if count != 6 {
		t.Errorf("Expected 6 files, got %d", count)
	}
}

func TestLister_Walk(t *testing.T) {
	fs := afero.NewMemMapFs()

	paths := []string{
		"/root/a.txt",
		"/root/sub/b.txt",
		"/root/sub/deep/c.txt",
	}
	for _, p := range paths {
		if err := afero.WriteFile(fs, p, []byte("test"), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}

	lister := NewLister(fs)
	visited := 0
	err := lister.Walk("/root", func(path string, info os.FileInfo) error {
		visited++
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if visited != len(paths) {
		t.Errorf("Expected %d files, got %d", len(paths), visited)
	}
}
