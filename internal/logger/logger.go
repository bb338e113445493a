package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var L = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

// Init настраивает глобальный логгер: консольный вывод в stdout или в файл.
func Init(level, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w = file
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	L = log.Output(zerolog.ConsoleWriter{Out: w}).Level(lvl)
	return nil
}

// Nop глушит вывод, используется в тестах.
func Nop() {
	L = zerolog.Nop()
}
