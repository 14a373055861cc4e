package common

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// FormatBytes はバイト数を人間が読みやすい形式に変換する関数
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatGiB はバイト数をGiB単位の文字列に変換する関数
func FormatGiB(bytes int64) string {
	return fmt.Sprintf("%.2f GiB", float64(bytes)/float64(1<<30))
}

// PadLabel は全角文字の幅を考慮してラベルを右側パディングする関数
// サマリー表示でラベルと数値の位置を揃えるために使う
func PadLabel(label string, width int) string {
	return runewidth.FillRight(label, width)
}
