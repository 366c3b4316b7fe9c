package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/KunalatGH/SCT-WD-2/internal/models"
)

type Database struct {
	db *sql.DB
}

// NewDatabase 创建本次会话的计次数据库
// 使用内存数据库，进程退出后数据即消失
func NewDatabase() (*Database, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}

	// 内存数据库绑定在单个连接上，限制连接池大小为 1
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	database := &Database{db: db}
	if err := database.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return database, nil
}

func (d *Database) initTables() error {
	// 创建计次记录表
	_, err := d.db.Exec(`
        CREATE TABLE IF NOT EXISTS laps (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            seq INTEGER NOT NULL,
            elapsed_ms INTEGER NOT NULL,
            split_ms INTEGER NOT NULL,
            recorded_at DATETIME NOT NULL
        )
    `)
	return err
}

// SaveLap 保存一条计次记录
func (d *Database) SaveLap(lap models.Lap) error {
	_, err := d.db.Exec(`
        INSERT INTO laps (seq, elapsed_ms, split_ms, recorded_at)
        VALUES (?, ?, ?, ?)
    `, lap.Seq, lap.ElapsedMs, lap.SplitMs, time.Now())
	return err
}

// ClearLaps 清空计次记录，秒表归零时调用
func (d *Database) ClearLaps() error {
	_, err := d.db.Exec("DELETE FROM laps")
	return err
}

// GetLaps 按记录顺序返回所有计次
func (d *Database) GetLaps() ([]models.Lap, error) {
	rows, err := d.db.Query(`
        SELECT seq, elapsed_ms, split_ms
        FROM laps
        ORDER BY seq ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var laps []models.Lap
	for rows.Next() {
		var lap models.Lap
		if err := rows.Scan(&lap.Seq, &lap.ElapsedMs, &lap.SplitMs); err != nil {
			return nil, err
		}
		laps = append(laps, lap)
	}
	return laps, rows.Err()
}

// 统计相关方法
type LapStats struct {
	TotalLaps    int
	FastestMs    int64   // 最快一次计次的间隔毫秒数
	SlowestMs    int64   // 最慢一次计次的间隔毫秒数
	AverageMs    float64 // 平均间隔毫秒数
	TotalElapsed int64   // 最后一次计次时的累计毫秒数
}

func (d *Database) GetLapStats() (*LapStats, error) {
	stats := &LapStats{}

	err := d.db.QueryRow(`
        SELECT
            COUNT(*) as total,
            COALESCE(MIN(split_ms), 0) as fastest,
            COALESCE(MAX(split_ms), 0) as slowest,
            COALESCE(AVG(split_ms), 0) as average,
            COALESCE(MAX(elapsed_ms), 0) as total_elapsed
        FROM laps
    `).Scan(
		&stats.TotalLaps,
		&stats.FastestMs,
		&stats.SlowestMs,
		&stats.AverageMs,
		&stats.TotalElapsed,
	)

	return stats, err
}

// Close 关闭数据库连接
func (d *Database) Close() error {
	return d.db.Close()
}
