// Command fastpfor-vectors generates FastPFOR test vectors and inspects
// encoded files.
//
// Usage:
//
//	fastpfor-vectors generate --bitwidths=4,8,16 --count=512 --pattern=dense
//	fastpfor-vectors generate --pattern=exceptions --format=bin --out=testdata
//	fastpfor-vectors inspect --count=512 testdata/exceptions_13bit_encoded.bin
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	app := kingpin.New("fastpfor-vectors", "Generate and inspect FastPFOR test vectors.")
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").Enum("debug", "info", "warn", "error")
	app.PreAction(func(*kingpin.ParseContext) error {
		logger = level.NewFilter(logger, levelOption(*logLevel))
		return nil
	})

	addGenerateCommand(app)
	addInspectCommand(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func levelOption(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

func exitWithErr(err error) {
	level.Error(logger).Log("err", err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
