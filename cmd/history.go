package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TonyNguyenVn17/files-organizor/config"
	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/catalog"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查看移动台账中的最近记录",
	Long: `从 SQLite 移动台账中列出最近的整理和撤销记录。
台账是追加式的审计记录，不会被撤销操作清空。`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")

	catalogPath, err := config.ExpandPath(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("展开台账路径失败: %w", err)
	}

	db, err := catalog.New(catalogPath)
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := db.Recent(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("台账中还没有记录")
		return nil
	}

	organizeCount, err := db.CountByKind(internal.KindOrganizeByType)
	if err == nil {
		byDate, errDate := db.CountByKind(internal.KindOrganizeByDate)
		undos, errUndo := db.CountByKind(internal.KindUndo)
		if errDate == nil && errUndo == nil {
			fmt.Printf("台账统计: 按类型 %d 条，按日期 %d 条，撤销 %d 条\n\n", organizeCount, byDate, undos)
		}
	}

	for _, e := range entries {
		if e.Kind == string(internal.KindUndo) {
			fmt.Printf("[%s] %-16s %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Kind, e.Destination)
			continue
		}
		fmt.Printf("[%s] %-16s %s -> %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Kind, e.Source, e.Destination)
	}

	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "最多显示的记录条数")

	rootCmd.AddCommand(historyCmd)
}
