package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"

	"github.com/arloliu/fastpfor"
	"github.com/arloliu/fastpfor/codec"
	"github.com/arloliu/fastpfor/internal/compress"
)

// inspectCommand prints the page layout of encoded files.
type inspectCommand struct {
	count   *int
	blocks  *bool
	compare *bool
	files   *[]string
}

func addInspectCommand(app *kingpin.Application) {
	cmd := &inspectCommand{}
	inspect := app.Command("inspect", "Print the layout of big-endian encoded files.").Action(cmd.run)
	cmd.count = inspect.Flag("count", "Expected number of values; when set the file is fully decoded.").Default("-1").Int()
	cmd.blocks = inspect.Flag("blocks", "Print the plan of every block.").Bool()
	cmd.compare = inspect.Flag("compare", "Report how far zstd, s2 and lz4 shrink the encoded stream.").Bool()
	cmd.files = inspect.Arg("file", "The files to inspect.").Required().ExistingFiles()
}

func (cmd *inspectCommand) run(*kingpin.ParseContext) error {
	for _, f := range *cmd.files {
		if err := cmd.inspectFile(f); err != nil {
			exitWithErr(fmt.Errorf("%s: %w", f, err))
		}
	}

	return nil
}

func (cmd *inspectCommand) inspectFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	level.Debug(logger).Log("msg", "inspecting", "file", name, "size", len(data))

	info, err := fastpfor.Inspect(data)
	if err != nil {
		return fmt.Errorf("failed to inspect stream: %w", err)
	}

	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)
	fmt.Printf("\tsize: %v, words: %d, values: %d, digest: %016x\n",
		humanize.Bytes(uint64(len(data))), info.TotalWords, info.Values(), info.Digest)
	fmt.Printf("\taligned values: %d, pages: %d, tail: %d words holding %d values\n",
		info.AlignedLength, len(info.Pages), info.TailWords, info.TailValues)

	for i, page := range info.Pages {
		printPage(i, &page, *cmd.blocks)
	}

	if *cmd.count >= 0 {
		values, err := fastpfor.Decode(data, *cmd.count, len(data), nil)
		if err != nil {
			return fmt.Errorf("failed to decode %d values: %w", *cmd.count, err)
		}
		raw := uint64(4 * len(values))
		fmt.Printf("\tdecoded %d values, %v raw, ratio %.2f\n",
			len(values), humanize.Bytes(raw), float64(raw)/float64(max(len(data), 1)))
	}

	if *cmd.compare {
		return printCompression(data)
	}

	return nil
}

func printCompression(data []byte) error {
	stats, err := compress.Measure(data)
	if err != nil {
		return err
	}

	color.New(color.Bold).Println("\tGeneral-purpose compression of the encoded stream:")
	for _, s := range stats {
		fmt.Printf("\t\t%s: %v (ratio %.3f, savings %.1f%%)\n",
			s.Algorithm, humanize.Bytes(uint64(s.CompressedSize)), s.CompressionRatio(), s.SpaceSavings())
	}

	return nil
}

func printPage(index int, page *codec.PageInfo, blocks bool) {
	bold := color.New(color.Bold)
	bold.Printf("\tPage %d", index)
	fmt.Printf(" (word %d): values: %d, words: %d, payload words: %d, metadata: %v\n",
		page.Offset, page.Values, page.Words, page.PayloadWords, humanize.Bytes(uint64(page.MetadataBytes)))

	exceptions := 0
	for _, plan := range page.Blocks {
		exceptions += plan.ExceptionCount
	}
	fmt.Printf("\t\tblocks: %d, exceptions: %d\n", len(page.Blocks), exceptions)

	for _, s := range page.ExceptionStreams {
		fmt.Printf("\t\texception stream width %d: %d values in %d words\n", s.Width, s.Count, s.Words)
	}

	if !blocks {
		return
	}
	for i, plan := range page.Blocks {
		fmt.Printf("\t\tblock %d: base width %d, exceptions %d, max width %d\n",
			i, plan.BaseBitWidth, plan.ExceptionCount, plan.MaxBitWidth)
	}
}
