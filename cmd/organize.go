package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TonyNguyenVn17/files-organizor/app"
	"github.com/TonyNguyenVn17/files-organizor/config"
)

var organizeCmd = &cobra.Command{
	Use:   "organize <source> [dest]",
	Short: "按文件类型或日期整理目录",
	Long: `整理源目录中的顶层文件（不递归子目录），按扩展名分类表归入分类子目录。
未给出目标目录时在源目录内整理。
文件名重复时自动重命名（添加自增序号），不会覆盖已有文件。
整理完成后记录本次批次，可用 undo 撤销。`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	destDir := ""
	if len(args) == 2 {
		destDir = args[1]
	}

	byDate, _ := cmd.Flags().GetBool("by-date")
	verbose, _ := cmd.Flags().GetBool("verbose")

	detect := cfg.Organize.Detect
	if cmd.Flags().Changed("detect") {
		detect, _ = cmd.Flags().GetBool("detect")
	}
	verify := cfg.Organize.Verify
	if cmd.Flags().Changed("verify") {
		verify, _ = cmd.Flags().GetBool("verify")
	}
	writeReport := cfg.Organize.Report
	if cmd.Flags().Changed("no-report") {
		noReport, _ := cmd.Flags().GetBool("no-report")
		writeReport = !noReport
	}

	opts := &app.OrganizeOptions{
		SourceDir: args[0],
		DestDir:   destDir,
		ByDate:    byDate,
		Detect:    detect,
		Verify:    verify,
		Report:    writeReport,
		Verbose:   verbose,
		LogLevel:  cfg.Logging.Level,
		LogFile:   cfg.Logging.File,
	}

	_, stats, err := app.RunOrganize(opts)
	if err != nil {
		return err
	}

	fmt.Println(stats.String())

	return nil
}

func init() {
	organizeCmd.Flags().Bool("by-date", false, "按修改日期（年-月）而不是文件类型整理")
	organizeCmd.Flags().Bool("detect", false, "扩展名未识别时按文件内容检测分类")
	organizeCmd.Flags().Bool("verify", false, "移动前记录文件哈希，撤销时校验")
	organizeCmd.Flags().Bool("no-report", false, "不在目标目录写入整理报告")
	organizeCmd.Flags().Bool("verbose", false, "显示详细日志")

	rootCmd.AddCommand(organizeCmd)
}
