package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "files-organizor",
	Short: "按类型或日期整理目录中的文件，并支持撤销最近一次整理",
	Long: `Files Organizor 是一个命令行工具，用于把目录中的文件归入分类子目录。

主要功能:
- 按扩展名分类表或修改日期整理目录的顶层文件
- 目标文件名冲突时自动追加序号，不覆盖已有文件
- 记录最近一次整理的移动批次（单槽历史）
- 撤销最近一次整理，把文件恢复到原位置并清理空分类目录
- 追加式时间线和 SQLite 移动台账作为审计记录`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
