package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fernbridge-labs/cbor-stream/cbor"
)

// CLI defines the cbordump command-line interface: dump a CBOR document
// as RFC 8949-flavored diagnostic notation, or just check it is
// well-formed.
type CLI struct {
	Input           string `arg:"" optional:"" help:"Input file (defaults to stdin)"`
	Validate        bool   `short:"c" help:"Only check well-formedness; print nothing on success"`
	MaxNestingDepth uint32 `help:"Override the container nesting-depth limit" default:"0"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cbordump"),
		kong.Description("Decode and diagnose CBOR documents."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	data, err := readInput(cli.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	src := cbor.NewSliceSource(data)

	if cli.Validate {
		if err := cbor.ValidateWellFormed(src); err != nil {
			return err
		}
		return nil
	}

	config := cbor.NewConfig()
	config.SetMaxNestingDepth(cli.MaxNestingDepth)

	parser := cbor.NewParser(src, config)
	defer parser.Close()

	diag := cbor.NewDiagVisitor()
	defer diag.Close()

	if err := parser.Parse(diag); err != nil {
		return err
	}

	fmt.Println(diag.String())
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return readAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func readAll(f *os.File) ([]byte, error) {
	info, err := f.Stat()
	if err == nil && info.Size() > 0 {
		buf := make([]byte, info.Size())
		n, err := f.Read(buf)
		if err != nil && n == 0 {
			return nil, err
		}
		return buf[:n], nil
	}
	var out []byte
	chunk := make([]byte, 4096)
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			out = append(out, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	return out, nil
}
