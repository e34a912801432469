package category

import (
	"io"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

// Detect 读取文件头部并按内容推断分类
// 仅在扩展名未命中分类表时作为补充手段使用
// 无法识别时返回 (Fallback, false)
func Detect(fs afero.Fs, filePath string) (string, bool) {
	head, err := readFileHeader(fs, filePath, internal.FileHeaderSize)
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("读取文件头部失败: %s", filePath)
		return Fallback, false
	}

	kind, err := filetype.Match(head)
	if err != nil || kind == types.Unknown {
		return Fallback, false
	}

	if name, ok := categoryForType(kind); ok {
		logger.Get().Debug().Msgf("按内容识别分类: %s -> %s", filePath, name)
		return name, true
	}

	return Fallback, false
}

// categoryForType 将 filetype 的识别结果映射到分类表中的分类名
func categoryForType(kind types.Type) (string, bool) {
	switch kind.MIME.Type {
	case "image":
		return "images", true
	case "video":
		return "videos", true
	case "audio":
		return "audio", true
	}

	switch kind.Extension {
	case "pdf", "doc", "docx", "rtf", "odt":
		return "documents", true
	case "xls", "xlsx":
		return "spreadsheets", true
	case "ppt", "pptx":
		return "presentations", true
	case "zip", "rar", "7z", "tar", "gz":
		return "archives", true
	}

	return "", false
}

// readFileHeader 读取文件的前 size 个字节，用于文件类型检测
func readFileHeader(fs afero.Fs, filePath string, size int) ([]byte, error) {
	file, err := fs.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	head := make([]byte, size)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return nil, err
	}

	return head[:n], nil
}
