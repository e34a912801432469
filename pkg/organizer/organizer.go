package organizer

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/catalog"
	"github.com/TonyNguyenVn17/files-organizor/pkg/category"
	"github.com/TonyNguyenVn17/files-organizor/pkg/hasher"
	"github.com/TonyNguyenVn17/files-organizor/pkg/history"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
	"github.com/TonyNguyenVn17/files-organizor/pkg/scanner"
)

// ErrSourceNotFound 源目录不存在
var ErrSourceNotFound = errors.New("源目录不存在")

// Organizer 负责整理目录中的文件并记录可撤销的移动批次
// 不支持并发调用：历史记录是无锁的共享单文件
type Organizer struct {
	Fs      afero.Fs
	Store   *history.Store
	Catalog *catalog.DB // 可为 nil，台账只是补充审计
	Detect  bool        // 扩展名未命中时按内容检测分类
	Verify  bool        // 移动前记录文件哈希
	Workers int         // 哈希计算的工作线程数
}

func New(fs afero.Fs, store *history.Store) *Organizer {
	return &Organizer{
		Fs:      fs,
		Store:   store,
		Workers: internal.DefaultWorkers,
	}
}

// OrganizeByType 按扩展名分类表整理 sourceDir 的顶层文件
// destDir 为空时在源目录内整理
func (o *Organizer) OrganizeByType(sourceDir, destDir string) (*internal.OperationBatch, *internal.OrganizeStats, error) {
	return o.organize(internal.KindOrganizeByType, sourceDir, destDir, o.typeCategory)
}

// OrganizeByDate 按修改时间（年-月）整理 sourceDir 的顶层文件
func (o *Organizer) OrganizeByDate(sourceDir, destDir string) (*internal.OperationBatch, *internal.OrganizeStats, error) {
	return o.organize(internal.KindOrganizeByDate, sourceDir, destDir, o.dateCategory)
}

// typeCategory 按扩展名确定分类，必要时回退到内容检测
func (o *Organizer) typeCategory(filePath string, stats *internal.OrganizeStats) (string, error) {
	cat := category.Resolve(filepath.Ext(filePath))
	if cat == category.Fallback && o.Detect {
		if detected, ok := category.Detect(o.Fs, filePath); ok {
			stats.Detected++
			return detected, nil
		}
	}
	return cat, nil
}

// dateCategory 按文件修改时间确定分类
func (o *Organizer) dateCategory(filePath string, stats *internal.OrganizeStats) (string, error) {
	info, err := o.Fs.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("读取文件信息失败: %w", err)
	}
	return category.DateCategory(info.ModTime()), nil
}

func (o *Organizer) organize(kind internal.OperationKind, sourceDir, destDir string,
	categoryFn func(string, *internal.OrganizeStats) (string, error)) (*internal.OperationBatch, *internal.OrganizeStats, error) {

	// 源目录必须存在，任何变更之前先失败
	exists, err := afero.DirExists(o.Fs, sourceDir)
	if err != nil {
		return nil, nil, fmt.Errorf("检查源目录失败: %w", err)
	}
	if !exists {
		return nil, nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourceDir)
	}

	targetDir := destDir
	if targetDir == "" {
		targetDir = sourceDir
	}
	if err := o.Fs.MkdirAll(targetDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("创建目标目录失败: %w", err)
	}

	// 只列举源目录的直接文件项，不递归
	// 源目录等于目标目录时，已归入分类子目录的文件不会被重复整理
	lister := scanner.NewLister(o.Fs)
	files, err := lister.ListFiles(sourceDir)
	if err != nil {
		return nil, nil, fmt.Errorf("列举源目录失败: %w", err)
	}

	stats := &internal.OrganizeStats{TotalFiles: len(files)}

	// 开启校验时先并发计算全部哈希，移动本身保持顺序执行
	var hashes map[string]string
	if o.Verify {
		hashes = hasher.HashAll(o.Fs, files, o.Workers)
		stats.Hashed = len(hashes)
	}

	logger.Get().Info().Msgf("开始整理: %s -> %s (%d 个文件, 方式: %s)", sourceDir, targetDir, len(files), kind)

	operations := make([]internal.MoveRecord, 0, len(files))
	for _, filePath := range files {
		cat, err := categoryFn(filePath, stats)
		if err != nil {
			// 移动失败中止剩余批次，已完成的移动不回滚，历史记录不提交
			return nil, stats, fmt.Errorf("处理文件失败 %s: %w", filePath, err)
		}

		categoryDir := filepath.Join(targetDir, cat)
		record, renamed, err := o.moveFile(filePath, categoryDir)
		if err != nil {
			return nil, stats, fmt.Errorf("移动文件失败 %s: %w", filePath, err)
		}

		if hash, ok := hashes[filePath]; ok {
			record.Hash = hash
		}
		if renamed {
			stats.Renamed++
		}
		stats.Moved++
		operations = append(operations, record)
	}

	batch := &internal.OperationBatch{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Kind:       kind,
		SourceDir:  sourceDir,
		TargetDir:  targetDir,
		Operations: operations,
	}

	if err := o.commit(batch); err != nil {
		return nil, stats, err
	}

	logger.Get().Info().Msgf("整理完成: 移动 %d 个文件，重命名 %d 个", stats.Moved, stats.Renamed)
	return batch, stats, nil
}

// commit 将批次写入历史记录和时间线，并尽力记入台账
func (o *Organizer) commit(batch *internal.OperationBatch) error {
	if err := o.Store.Save(batch); err != nil {
		return err
	}

	if err := o.Store.AppendTimeline(batch); err != nil {
		return err
	}

	// 台账失败只降级为警告，不影响整理结果
	if o.Catalog != nil {
		if err := o.Catalog.RecordBatch(batch); err != nil {
			logger.Get().Warn().Err(err).Msg("写入移动台账失败")
		}
	}

	return nil
}
