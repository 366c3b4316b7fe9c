package engine

import "fmt"

// FormatMillis 将毫秒转换为显示格式 "MM:SS:毫秒前两位"
// 分钟超过 99 时自然变宽，不回绕
func FormatMillis(ms int64) string {
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	hundredths := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, hundredths)
}
