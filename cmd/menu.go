package cmd

import (
	"github.com/spf13/cobra"

	"github.com/TonyNguyenVn17/files-organizor/config"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
	"github.com/TonyNguyenVn17/files-organizor/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "启动交互式菜单",
	Long:  `打开交互式界面，选择按类型整理、按日期整理或撤销最近一次整理。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// TUI 模式下日志只写文件，避免干扰界面
		// 未配置日志文件时不初始化，logger.Get 会丢弃输出
		if cfg.Logging.File != "" {
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
				return err
			}
		}

		return tui.Run()
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
