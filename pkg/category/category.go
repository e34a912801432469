package category

import (
	"strings"
	"time"
)

// Fallback 未识别扩展名的兜底分类
const Fallback = "others"

// Category 一个分类及其对应的扩展名集合
type Category struct {
	Name       string
	Extensions []string
}

// table 静态分类表，按声明顺序做首次匹配
// 同一扩展名不会出现在两个分类中（表的约定，运行时不校验）
var table = []Category{
	{"images", []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".heic", ".raw"}},
	{"documents", []string{".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".pages"}},
	{"spreadsheets", []string{".xls", ".xlsx", ".numbers", ".csv"}},
	{"presentations", []string{".ppt", ".pptx", ".key"}},
	{"videos", []string{".mp4", ".mov", ".avi", ".wmv", ".flv", ".mkv"}},
	{"audio", []string{".mp3", ".wav", ".aac", ".m4a", ".flac"}},
	{"archives", []string{".zip", ".rar", ".7z", ".tar", ".gz"}},
	{"code", []string{".py", ".java", ".cpp", ".js", ".html", ".css", ".php", ".c", ".ts"}},
}

// Resolve 根据扩展名（含前导点，大小写不敏感）返回分类名
// 未匹配时返回兜底分类
func Resolve(ext string) string {
	lower := strings.ToLower(ext)
	for _, c := range table {
		for _, e := range c.Extensions {
			if e == lower {
				return c.Name
			}
		}
	}
	return Fallback
}

// Names 返回所有分类名（含兜底分类），按声明顺序
func Names() []string {
	names := make([]string, 0, len(table)+1)
	for _, c := range table {
		names = append(names, c.Name)
	}
	return append(names, Fallback)
}

// DateCategory 返回按修改时间分组的目录名（年-月）
func DateCategory(modTime time.Time) string {
	return modTime.Format("2006-01")
}
