package category

import (
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		ext      string
		expected string
	}{
		{".jpg", "images"},
		{".JPG", "images"},
		{".jpeg", "images"},
		{".pdf", "documents"},
		{".TXT", "documents"},
		{".csv", "spreadsheets"},
		{".key", "presentations"},
		{".mkv", "videos"},
		{".flac", "audio"},
		{".7z", "archives"},
		{".py", "code"},
		{".xyz", Fallback},
		{"", Fallback},
	}

	for _, tc := range testCases {
		t.Run(tc.ext, func(t *testing.T) {
			result := Resolve(tc.ext)
			if result != tc.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tc.ext, result, tc.expected)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()

	if len(names) != 9 {
		t.Errorf("Expected 9 categories, got %d", len(names))
	}

	if names[len(names)-1] != Fallback {
		t.Errorf("Expected last category to be %q, got %q", Fallback, names[len(names)-1])
	}
}

func TestDateCategory(t *testing.T) {
	modTime := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	result := DateCategory(modTime)
	if result != "2024-03" {
		t.Errorf("DateCategory() = %q, want 2024-03", result)
	}
}

func TestDetect(t *testing.T) {
	fs := afero.NewMemMapFs()

	testCases := []struct {
		filename string
		content  string
		expected string
		ok       bool
	}{
		{"photo.bin", "\xff\xd8\xff\xe0\x00\x10JFIF", "images", true},
		{"graphic.bin", "\x89PNG\r\n\x1a\n", "images", true},
		{"paper.bin", "%PDF-1.4", "documents", true},
		{"song.bin", "ID3\x04\x00\x00\x00\x00\x00\x00", "audio", true},
		{"bundle.bin", "PK\x03\x04", "archives", true},
		{"plain.bin", "random content", Fallback, false},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			if err := afero.WriteFile(fs, tc.filename, []byte(tc.content), 0644); err != nil {
				t.Fatalf("创建测试文件失败: %v", err)
			}

			result, ok := Detect(fs, tc.filename)
			if ok != tc.ok {
				t.Errorf("Detect() ok = %v, want %v", ok, tc.ok)
			}
			if result != tc.expected {
				t.Errorf("Detect() = %q, want %q", result, tc.expected)
			}
		})
	}
}

func TestDetect_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	result, ok := Detect(fs, "/no/such/file")
	if ok {
		t.Error("Expected ok = false for missing file")
	}
	if result != Fallback {
		t.Errorf("Expected fallback category, got %q", result)
	}
}
