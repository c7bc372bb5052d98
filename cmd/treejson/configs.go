package main

import (
	"io"
	"os"
	"strings"

	"github.com/signadot/treejson/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Object bool `cli:"name=object desc='output a nested object instead of a node array'"`

	Out string

	Main *cli.Command
}

// outOpt only records the path; the file is created once conversion has
// succeeded.
func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return nil, nil
}

func (cfg *MainConfig) toStdout() bool {
	return cfg.Out == "" || cfg.Out == "-"
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if !cfg.toStdout() {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// splitOptArgs rewrites "-name=value" and "--name=value" for options taking
// an argument into the two argument form understood by Command.Parse.
// Arguments after "--" and values of preceding options are left as is.
func splitOptArgs(cmd *cli.Command, args []string) []string {
	d := cmd.AllOpts()
	res := make([]string, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(res, args[i:]...)
		}
		if len(arg) < 2 || arg[0] != '-' {
			res = append(res, arg)
			continue
		}
		name, val, hasVal := strings.Cut(strings.TrimPrefix(arg[1:], "-"), "=")
		opt := d[name]
		if opt == nil || !opt.Type.ArgRequired() {
			res = append(res, arg)
			continue
		}
		if hasVal {
			res = append(res, "-"+name, val)
			continue
		}
		res = append(res, arg)
		if i+1 < len(args) {
			i++
			res = append(res, args[i])
		}
	}
	return res
}
