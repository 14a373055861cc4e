package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log はツール全体で共有するロガー
var Log zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = time.RFC3339

	// Setupが呼ばれるまでは標準出力のみ
	Log = zerolog.New(consoleWriter()).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// Setup はログ出力先をログファイルと標準出力の両方に切り替える
func Setup(logFile string) error {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("ログファイル %s のオープンに失敗: %w", logFile, err)
	}

	Log = zerolog.New(zerolog.MultiLevelWriter(consoleWriter(), f)).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
	return nil
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}
}
