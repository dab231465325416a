package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/L-P/mme/internal/format"
)

type romOptions struct {
	ROMPath string
}

type filesOptions struct {
	romOptions
	All bool
}

// newFlagSet returns a flag set carrying the -rom flag shared by every command.
func newFlagSet(name string, opts *romOptions) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&opts.ROMPath, "rom", "", "Path to the decompressed ROM (defaults to ROM_PATH)")
	return fs
}

func parseROMFlags(name string, args []string, positional int) (romOptions, []string, error) {
	var opts romOptions
	fs := newFlagSet(name, &opts)
	if err := fs.Parse(args); err != nil {
		return romOptions{}, nil, err
	}
	if fs.NArg() != positional {
		return romOptions{}, nil, fmt.Errorf("%s expects %d argument(s), got %d", name, positional, fs.NArg())
	}
	return opts, fs.Args(), nil
}

func parseFilesFlags(args []string) (filesOptions, error) {
	var opts filesOptions
	fs := newFlagSet("files", &opts.romOptions)
	fs.BoolVar(&opts.All, "all", false, "Include unused file table entries")
	if err := fs.Parse(args); err != nil {
		return filesOptions{}, err
	}
	if fs.NArg() != 0 {
		return filesOptions{}, fmt.Errorf("files takes no arguments, got %d", fs.NArg())
	}
	return opts, nil
}

// parseStart accepts a decimal or 0x-prefixed VROM offset.
func parseStart(raw string) (uint32, error) {
	v, err := strconv.ParseUint(raw, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid start %q: %w", raw, err)
	}
	return uint32(v), nil
}

func runInfo(cmdCtx *commandContext, args []string) error {
	opts, _, err := parseROMFlags("info", args, 0)
	if err != nil {
		return err
	}
	catalog, err := cmdCtx.loadCatalog(opts.ROMPath)
	if err != nil {
		return err
	}

	summary, err := catalog.Summary(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"Name", summary.Name},
		{"CRC1", summary.CRC1},
		{"CRC2", summary.CRC2},
		{"Build team", summary.BuildTeam},
		{"Build date", summary.BuildDate},
	}
	for _, row := range rows {
		if err := writef(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("write info row: %w", err)
		}
	}
	return tw.Flush()
}

func runFiles(cmdCtx *commandContext, args []string) error {
	opts, err := parseFilesFlags(args)
	if err != nil {
		return err
	}
	catalog, err := cmdCtx.loadCatalog(opts.ROMPath)
	if err != nil {
		return err
	}
	files, err := catalog.Files(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "#\tNAME\tTYPE\tVROM START\tVROM END\tSIZE\tVALID"); err != nil {
		return fmt.Errorf("write files header row: %w", err)
	}

	for i, f := range files {
		if !f.Valid && !opts.All {
			continue
		}
		size, err := format.Bytes(f.Size())
		if err != nil {
			return err
		}
		if err := writef(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i,
			f.Name,
			f.Type,
			format.HexOf(f.VROMStart, 8),
			format.HexOf(f.VROMEnd, 8),
			size,
			format.Bool(f.Valid),
		); err != nil {
			return fmt.Errorf("write file row: %w", err)
		}
	}
	return tw.Flush()
}

func runScenes(cmdCtx *commandContext, args []string) error {
	opts, _, err := parseROMFlags("scenes", args, 0)
	if err != nil {
		return err
	}
	catalog, err := cmdCtx.loadCatalog(opts.ROMPath)
	if err != nil {
		return err
	}
	scenes, err := catalog.Scenes(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "#\tNAME\tENTRANCE\tVROM START\tROOMS"); err != nil {
		return fmt.Errorf("write scenes header row: %w", err)
	}
	for i, s := range scenes {
		if !s.Valid {
			continue
		}
		if err := writef(tw, "%s\t%s\t%s\t%s\t%d\n",
			format.HexOf(i, 2),
			s.Name,
			s.EntranceMessage,
			format.HexOf(s.VROMStart, 8),
			len(s.Rooms),
		); err != nil {
			return fmt.Errorf("write scene row: %w", err)
		}
		for _, r := range s.Rooms {
			if err := writef(tw, "\t  room %d\t\t%s\t%d actors\n", r.ID, format.HexOf(r.VROMStart, 8), len(r.ActorList)); err != nil {
				return fmt.Errorf("write room row: %w", err)
			}
		}
	}
	return tw.Flush()
}

func runMessages(cmdCtx *commandContext, args []string) error {
	opts, _, err := parseROMFlags("messages", args, 0)
	if err != nil {
		return err
	}
	catalog, err := cmdCtx.loadCatalog(opts.ROMPath)
	if err != nil {
		return err
	}
	msgs, err := catalog.Messages(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	for _, m := range msgs {
		if err := writef(cmdCtx.Out, "%s %s\n%s\n\n", format.HexOf(m.ID, 4), format.HexOf(m.VROMStart, 8), m.String); err != nil {
			return fmt.Errorf("write message: %w", err)
		}
	}
	return nil
}

func runColorMap(cmdCtx *commandContext, args []string) error {
	opts, rest, err := parseROMFlags("colormap", args, 1)
	if err != nil {
		return err
	}
	catalog, err := cmdCtx.loadCatalog(opts.ROMPath)
	if err != nil {
		return err
	}

	png, err := catalog.ColorMap(cmdCtx.Ctx)
	if err != nil {
		return err
	}
	return writeOutput(cmdCtx, rest[0], png)
}

func runExtract(cmdCtx *commandContext, args []string) error {
	opts, rest, err := parseROMFlags("extract", args, 2)
	if err != nil {
		return err
	}
	start, err := parseStart(rest[0])
	if err != nil {
		return err
	}
	catalog, err := cmdCtx.loadCatalog(opts.ROMPath)
	if err != nil {
		return err
	}

	data, err := catalog.FileData(cmdCtx.Ctx, start)
	if err != nil {
		return err
	}
	return writeOutput(cmdCtx, rest[1], data)
}

// writeOutput writes data to path, or to the command output when path is "-".
func writeOutput(cmdCtx *commandContext, path string, data []byte) error {
	if path == "" {
		return errors.New("output path is empty")
	}
	if path == "-" {
		_, err := cmdCtx.Out.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // extracted game data is not sensitive
		return fmt.Errorf("write %s: %w", path, err)
	}
	size, _ := format.Bytes(len(data))
	cmdCtx.Logger.Info("wrote output", "path", path, "size", size)
	return nil
}
