package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/TonyNguyenVn17/files-organizor/internal"
)

type Config struct {
	History struct {
		Path     string
		Timeline string
	}
	Catalog struct {
		Path string
	}
	Organize struct {
		Detect bool // 扩展名未命中时按文件内容检测分类
		Verify bool // 移动前计算哈希并记录
		Report bool // 整理完成后在目标目录写入报告
	}
	Performance struct {
		Workers int
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.files-organizor")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/files-organizor")

	viper.SetDefault("history.path", internal.DefaultHistoryPath)
	viper.SetDefault("history.timeline", internal.DefaultTimelinePath)
	viper.SetDefault("catalog.path", internal.DefaultCatalogPath)
	viper.SetDefault("organize.detect", false)
	viper.SetDefault("organize.verify", false)
	viper.SetDefault("organize.report", true)
	viper.SetDefault("performance.workers", internal.DefaultWorkers)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}

// ExpandPath 将路径开头的 ~ 展开为用户主目录
func ExpandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
