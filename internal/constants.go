package internal

const (
	// 历史记录文件默认路径
	DefaultHistoryPath = "~/.files-organizor/organization_history.json"

	// 时间线文件默认路径
	DefaultTimelinePath = "~/.files-organizor/timeline.txt"

	// 移动台账数据库默认路径
	DefaultCatalogPath = "~/.files-organizor/moves.db"

	// 哈希计算的默认工作线程数
	DefaultWorkers = 4

	// 任务通道缓冲区大小
	DefaultBufferSize = 1000

	// 时间线和报告中使用的时间格式
	DisplayTimeFormat = "2006-01-02 03:04 PM"

	// 文件类型检测所需的文件头部大小（字节）
	FileHeaderSize = 8192
)
