package hasher

import (
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

// Calculate 计算文件的 xxHash 哈希值
func Calculate(fs afero.Fs, filePath string) (uint64, error) {
	logger.Get().Debug().Msgf("计算文件哈希: %s", filePath)

	file, err := fs.Open(filePath)
	if err != nil {
		logger.Get().Error().Err(err).Msgf("无法打开文件: %s", filePath)
		return 0, err
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.Get().Error().Err(err).Msgf("计算哈希失败: %s", filePath)
		return 0, err
	}

	result := hash.Sum64()
	logger.Get().Trace().Msgf("文件哈希计算完成: %s -> %x", filePath, result)
	return result, nil
}

// Format 将哈希值转换为十六进制字符串
func Format(hash uint64) string {
	return strconv.FormatUint(hash, 16)
}
