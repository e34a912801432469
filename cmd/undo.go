package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TonyNguyenVn17/files-organizor/app"
	"github.com/TonyNguyenVn17/files-organizor/config"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "撤销最近一次整理",
	Long: `把最近一次整理移动的文件恢复到原位置，并清理整理时创建的空分类目录。
历史记录只保留最近一次整理（单槽），撤销后历史被清空。
目标位置已被移走或删除的文件会被跳过，撤销是尽力而为的。`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	result, err := app.RunUndo(verbose, cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}

	if result == nil {
		fmt.Println("没有可撤销的整理记录")
		return nil
	}

	fmt.Println(result.String())

	return nil
}

func init() {
	undoCmd.Flags().Bool("verbose", false, "显示详细日志")

	rootCmd.AddCommand(undoCmd)
}
