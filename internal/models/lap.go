package models

// Lap 表示一次计次记录，创建后不再修改
type Lap struct {
	Seq       int    // 序号，从 1 开始，按记录顺序递增
	ElapsedMs int64  // 记录时刻的累计毫秒数
	SplitMs   int64  // 与上一次计次的间隔毫秒数，第一次计次等于 ElapsedMs
	Formatted string // 记录时刻的显示格式，如 "01:01:01"
}
