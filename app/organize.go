package app

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/config"
	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/catalog"
	"github.com/TonyNguyenVn17/files-organizor/pkg/history"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
	"github.com/TonyNguyenVn17/files-organizor/pkg/organizer"
	"github.com/TonyNguyenVn17/files-organizor/pkg/report"
)

// OrganizeOptions 一次整理操作的全部参数
type OrganizeOptions struct {
	SourceDir string
	DestDir   string
	ByDate    bool
	Detect    bool
	Verify    bool
	Report    bool
	Verbose   bool
	LogLevel  string
	LogFile   string
}

// RunOrganize 执行一次整理操作并返回批次与统计信息
func RunOrganize(opts *OrganizeOptions) (*internal.OperationBatch, *internal.OrganizeStats, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, nil, err
	}

	org, cleanup, err := newOrganizer()
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()

	org.Detect = opts.Detect
	org.Verify = opts.Verify

	var batch *internal.OperationBatch
	var stats *internal.OrganizeStats
	if opts.ByDate {
		batch, stats, err = org.OrganizeByDate(opts.SourceDir, opts.DestDir)
	} else {
		batch, stats, err = org.OrganizeByType(opts.SourceDir, opts.DestDir)
	}
	if err != nil {
		return nil, stats, err
	}

	// 报告失败不影响整理结果
	if opts.Report {
		writer := report.NewWriter(org.Fs)
		if err := writer.Write(batch); err != nil {
			logger.Get().Warn().Err(err).Msg("写入整理报告失败")
		}
	}

	return batch, stats, nil
}

// RunUndo 撤销最近一次整理
// 返回 (nil, nil) 表示没有可撤销的记录
func RunUndo(verbose bool, logLevel, logFile string) (*internal.UndoResult, error) {
	if verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, logFile); err != nil {
		return nil, err
	}

	org, cleanup, err := newOrganizer()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return org.Undo()
}

// newOrganizer 根据配置组装整理器，返回的 cleanup 负责释放台账连接
func newOrganizer() (*organizer.Organizer, func(), error) {
	cfg := config.Get()
	fs := afero.NewOsFs()

	historyPath, err := config.ExpandPath(cfg.History.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("展开历史记录路径失败: %w", err)
	}
	timelinePath, err := config.ExpandPath(cfg.History.Timeline)
	if err != nil {
		return nil, nil, fmt.Errorf("展开时间线路径失败: %w", err)
	}

	store := history.NewStore(fs, historyPath, timelinePath)
	org := organizer.New(fs, store)
	org.Detect = cfg.Organize.Detect
	org.Verify = cfg.Organize.Verify
	org.Workers = cfg.Performance.Workers

	cleanup := func() {}

	// 台账打不开时只告警，核心流程不依赖它
	catalogPath, err := config.ExpandPath(cfg.Catalog.Path)
	if err == nil {
		if db, err := catalog.New(catalogPath); err == nil {
			org.Catalog = db
			cleanup = func() { db.Close() }
		} else {
			logger.Get().Warn().Err(err).Msgf("打开移动台账失败: %s", catalogPath)
		}
	}

	return org, cleanup, nil
}
