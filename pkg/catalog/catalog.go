package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/TonyNguyenVn17/files-organizor/internal"
	"github.com/TonyNguyenVn17/files-organizor/pkg/logger"
)

// DB 移动台账数据库
// 只追加的审计记录，整理和撤销的正确性不依赖它
type DB struct {
	conn *sql.DB
}

// Entry 台账中的一条移动记录
type Entry struct {
	ID          int64
	BatchID     string
	Kind        string
	Source      string
	Destination string
	CreatedAt   time.Time
}

// New 打开（必要时创建）台账数据库
func New(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("创建数据库目录失败: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	// 创建表（如果不存在）
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS move_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		batch_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		source TEXT,
		destination TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_batch_id ON move_log(batch_id);
	`

	_, err = conn.Exec(createTableSQL)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建表失败: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close 关闭数据库连接
func (db *DB) Close() error {
	return db.conn.Close()
}

// RecordBatch 将一个批次的所有移动记录写入台账
// 撤销批次没有移动记录时写入一条只含批次信息的行
func (db *DB) RecordBatch(batch *internal.OperationBatch) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO move_log (batch_id, kind, source, destination, created_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("准备插入语句失败: %w", err)
	}
	defer stmt.Close()

	if len(batch.Operations) == 0 {
		if _, err := stmt.Exec(batch.ID, string(batch.Kind), batch.SourceDir, batch.TargetDir, batch.Timestamp); err != nil {
			tx.Rollback()
			return fmt.Errorf("插入台账记录失败: %w", err)
		}
	}

	for _, op := range batch.Operations {
		if _, err := stmt.Exec(batch.ID, string(batch.Kind), op.Source, op.Destination, batch.Timestamp); err != nil {
			tx.Rollback()
			return fmt.Errorf("插入台账记录失败: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}

	logger.Get().Trace().Msgf("台账已记录批次: %s (%d 条)", batch.ID, len(batch.Operations))
	return nil
}

// Recent 返回最近的若干条台账记录，按时间倒序
func (db *DB) Recent(limit int) ([]Entry, error) {
	rows, err := db.conn.Query(
		"SELECT id, batch_id, kind, source, destination, created_at FROM move_log ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("查询台账失败: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.BatchID, &e.Kind, &e.Source, &e.Destination, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("读取行数据失败: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历结果集失败: %w", err)
	}

	return entries, nil
}

// CountByKind 统计某种操作类型的记录数量
func (db *DB) CountByKind(kind internal.OperationKind) (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM move_log WHERE kind = ?", string(kind)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("查询操作类型数量失败: %w", err)
	}
	return count, nil
}
