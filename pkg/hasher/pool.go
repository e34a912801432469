package hasher

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

type HashTask struct {
	Path string
}

type HashResult struct {
	Path  string
	Hash  uint64
	Error error
}

// Pool 基于 ants 的哈希计算池
type Pool struct {
	fs      afero.Fs
	workers int
	tasks   chan HashTask
	results chan HashResult
	wg      sync.WaitGroup
	pool    *ants.Pool
}

func NewPool(fs afero.Fs, workers int) *Pool {
	if workers <= 0 {
		workers = internal.DefaultWorkers
	}
	logger.Get().Debug().Msgf("创建哈希计算池，工作线程数: %d", workers)
	return &Pool{
		fs:      fs,
		workers: workers,
		tasks:   make(chan HashTask, internal.DefaultBufferSize),
		results: make(chan HashResult, internal.DefaultBufferSize),
	}
}

func (p *Pool) Start() error {
	var err error
	p.pool, err = ants.NewPool(p.workers)
	if err != nil {
		logger.Get().Error().Err(err).Msg("创建 goroutine 池失败")
		return err
	}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(p.worker); err != nil {
			p.wg.Done()
			return err
		}
	}
	return nil
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		hash, err := Calculate(p.fs, task.Path)
		p.results <- HashResult{
			Path:  task.Path,
			Hash:  hash,
			Error: err,
		}
	}
}

func (p *Pool) AddTask(task HashTask) {
	p.tasks <- task
}

func (p *Pool) Results() <-chan HashResult {
	return p.results
}

// Close 关闭任务通道并等待所有工作线程退出
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()

	if p.pool != nil {
		p.pool.Release()
	}
	close(p.results)
}

// HashAll 对一组文件并发计算哈希，返回路径到十六进制哈希的映射
// 单个文件的失败只记录日志，不影响其他文件
func HashAll(fs afero.Fs, paths []string, workers int) map[string]string {
	hashes := make(map[string]string, len(paths))
	if len(paths) == 0 {
		return hashes
	}

	pool := NewPool(fs, workers)
	if err := pool.Start(); err != nil {
		// 池启动失败时退化为串行计算
		logger.Get().Warn().Err(err).Msg("哈希计算池启动失败，改为串行计算")
		for _, path := range paths {
			if h, err := Calculate(fs, path); err == nil {
				hashes[path] = Format(h)
			}
		}
		return hashes
	}

	go func() {
		for _, path := range paths {
			pool.AddTask(HashTask{Path: path})
		}
		pool.Close()
	}()

	for result := range pool.Results() {
		if result.Error != nil {
			logger.Get().Warn().Err(result.Error).Msgf("计算哈希失败: %s", result.Path)
			continue
		}
		hashes[result.Path] = Format(result.Hash)
	}

	return hashes
}
