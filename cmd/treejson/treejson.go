package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/treejson/encode"
	"github.com/signadot/treejson/extract"
	"github.com/signadot/treejson/tree"

	"github.com/scott-cotton/cli"
)

func treejson(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, splitOptArgs(cfg.Main, args))
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", cli.ErrUsage, len(args))
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	return convertFile(cfg, cc.In, cc.Out, file)
}

func convertFile(cfg *MainConfig, stdin io.Reader, stdout io.Writer, file string) error {
	var (
		r    io.Reader = stdin
		name           = "stdin"
	)
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
		name = file
	}
	if err := convertReader(cfg, stdout, r); err != nil {
		return fmt.Errorf("error processing %s: %w", name, err)
	}
	return nil
}

func convertReader(cfg *MainConfig, stdout io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	nodes, err := extract.Parse(bytes.NewReader(in))
	if err != nil {
		return err
	}
	var v any = nodes
	if cfg.Object {
		v = tree.Fold(nodes)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, cfg.encOpts(stdout)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return writeOutput(cfg, stdout, buf.Bytes())
}

func writeOutput(cfg *MainConfig, stdout io.Writer, d []byte) error {
	if cfg.toStdout() {
		_, err := stdout.Write(d)
		return err
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(d); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", cfg.Out, err)
	}
	return f.Close()
}
