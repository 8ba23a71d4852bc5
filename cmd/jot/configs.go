package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/jot-format/jot/encode"
	"github.com/jot-format/jot/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Out      string
	CloseOut func() error

	outFile *os.File

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, v string) (any, error) {
	f, err := os.Create(v)
	if err != nil {
		return nil, err
	}
	cfg.Out = v
	cfg.outFile = f
	cfg.CloseOut = f.Close
	return v, nil
}

// writer returns the -o file when one was given, the command context
// output otherwise.
func (cfg *MainConfig) writer(cc *cli.Context) io.Writer {
	if cfg.outFile != nil {
		return cfg.outFile
	}
	return cc.Out
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Y {
		return []parse.ParseOption{parse.YAML()}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
		encode.EncodeYAML(cfg.Y && !cfg.J),
	}
	if cfg.Color || (cfg.outFile == nil && isatty.IsTerminal(os.Stdout.Fd())) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Del bool `cli:"name=d aliases=delete desc='delete the path instead of setting it'"`
	Set *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='apply an RFC 7386 merge patch instead of RFC 6902'"`
	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}
