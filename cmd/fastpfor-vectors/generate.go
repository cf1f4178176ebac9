package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"

	"github.com/arloliu/fastpfor"
	"github.com/arloliu/fastpfor/codec"
	"github.com/arloliu/fastpfor/endian"
	"github.com/arloliu/fastpfor/internal/hash"
)

// generateCommand encodes generated values for a set of bit widths and
// writes them as Go literals, hex words or big-endian binary files.
type generateCommand struct {
	bitwidths *string
	count     *int
	pattern   *string
	format    *string
	out       *string
}

func addGenerateCommand(app *kingpin.Application) {
	cmd := &generateCommand{}
	generate := app.Command("generate", "Generate encoded test vectors.").Action(cmd.run)
	cmd.bitwidths = generate.Flag("bitwidths", "Comma-separated bit widths (0..32).").Default("4,8,12,13,16").String()
	cmd.count = generate.Flag("count", "Number of values per vector.").Default("512").Int()
	cmd.pattern = generate.Flag("pattern", "Value pattern.").Default(string(patternDense)).Enum(patternNames...)
	cmd.format = generate.Flag("format", "Output format.").Default("go").Enum("go", "hex", "bin")
	cmd.out = generate.Flag("out", "Output directory for the bin format.").Default(".").String()
}

func (cmd *generateCommand) run(*kingpin.ParseContext) error {
	widths, err := parseBitwidths(*cmd.bitwidths)
	if err != nil {
		return err
	}

	p := pattern(*cmd.pattern)
	level.Info(logger).Log("msg", "generating vectors", "pattern", p, "count", *cmd.count, "bitwidths", *cmd.bitwidths)
	logBlockLayout(*cmd.count)

	if *cmd.format == "bin" {
		if err := os.MkdirAll(*cmd.out, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, bw := range widths {
		values, err := generateValues(bw, *cmd.count, p)
		if err != nil {
			return err
		}

		encoded := fastpfor.Encode(values)
		if err := verifyVector(values, encoded); err != nil {
			return fmt.Errorf("bit width %d: %w", bw, err)
		}

		name := fmt.Sprintf("%s_%dbit", p, bw)
		switch *cmd.format {
		case "go":
			writeGoVector(os.Stdout, name, values, encoded)
		case "hex":
			writeHexVector(os.Stdout, name, values, encoded)
		case "bin":
			if err := cmd.writeBinVector(name, values, encoded); err != nil {
				return err
			}
		}

		level.Debug(logger).Log("msg", "encoded vector", "name", name,
			"raw", humanize.Bytes(uint64(4*len(values))), "encoded", humanize.Bytes(uint64(len(encoded))),
			"digest", fmt.Sprintf("%016x", hash.Bytes(encoded)))
	}

	return nil
}

func (cmd *generateCommand) writeBinVector(name string, values []int32, encoded []byte) error {
	raw := make([]byte, 0, 4*len(values))
	for _, v := range values {
		raw = endian.GetBigEndianEngine().AppendUint32(raw, uint32(v))
	}

	for _, f := range []struct {
		suffix string
		data   []byte
	}{
		{suffix: "_values.bin", data: raw},
		{suffix: "_encoded.bin", data: encoded},
	} {
		path := filepath.Join(*cmd.out, name+f.suffix)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		level.Info(logger).Log("msg", "written", "file", path, "size", humanize.Bytes(uint64(len(f.data))))
	}

	return nil
}

func writeGoVector(w io.Writer, name string, values []int32, encoded []byte) {
	fmt.Fprintf(w, "// %s: %d values, %d encoded words\n", name, len(values), len(encoded)/4)
	fmt.Fprintf(w, "var %sValues = []int32{%s}\n", goIdent(name), joinInts(values))
	fmt.Fprintf(w, "var %sEncoded = []uint32{%s}\n\n", goIdent(name), joinWords(encodedWords(encoded), "0x%08x"))
}

func writeHexVector(w io.Writer, name string, values []int32, encoded []byte) {
	fmt.Fprintf(w, "%s values %s\n", name, joinInts(values))
	fmt.Fprintf(w, "%s encoded %s\n", name, joinWords(encodedWords(encoded), "%08x"))
}

// verifyVector decodes encoded and compares it with values.
func verifyVector(values []int32, encoded []byte) error {
	decoded, err := fastpfor.Decode(encoded, len(values), len(encoded), nil)
	if err != nil {
		return err
	}
	if !slices.Equal(values, decoded) {
		return fmt.Errorf("decoded values differ from generated values")
	}

	return nil
}

func logBlockLayout(count int) {
	aligned := count / codec.BlockSize * codec.BlockSize
	switch {
	case aligned == 0:
		level.Info(logger).Log("msg", "fewer values than one block, tail only", "count", count)
	case aligned != count:
		level.Info(logger).Log("msg", "block-aligned prefix with tail", "aligned", aligned, "tail", count-aligned)
	}
	if count > codec.DefaultPageSize {
		level.Info(logger).Log("msg", "multi-page encoding", "pages", (aligned+codec.DefaultPageSize-1)/codec.DefaultPageSize)
	}
}

func parseBitwidths(s string) ([]int, error) {
	var widths []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		bw, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid bit width %q: %w", field, err)
		}
		if bw < 0 || bw > 32 {
			return nil, fmt.Errorf("bit width %d out of range 0..32", bw)
		}
		widths = append(widths, bw)
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no bit widths in %q", s)
	}

	return widths, nil
}

func encodedWords(encoded []byte) []uint32 {
	words := make([]uint32, endian.WordCount(len(encoded)))
	endian.ReadWords(endian.GetBigEndianEngine(), words, encoded)

	return words
}

func joinInts(values []int32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}

	return strings.Join(parts, ", ")
}

func joinWords(words []uint32, format string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf(format, w)
	}

	return strings.Join(parts, ", ")
}

// goIdent turns a vector name such as "dense_4bit" into "dense4bit".
func goIdent(name string) string {
	return strings.ReplaceAll(name, "_", "")
}
