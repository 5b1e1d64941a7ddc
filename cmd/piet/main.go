// Command piet runs a Piet program given as a raster image.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/bdwalton/piet/program"
	"github.com/bdwalton/piet/vm"
)

var dumpRegions = flag.String("dump-regions", "", "Write a zstd-compressed region diagnostics dump to this path before running.")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: piet [-dump-regions <path>] <FILE>")
	}
	path := flag.Arg(0)

	p, err := program.Load(path)
	if err != nil {
		log.Fatalf("Invalid Piet program: %v", err)
	}

	if *dumpRegions != "" {
		if err := writeRegionDump(*dumpRegions, p); err != nil {
			log.Fatalf("Couldn't write region dump: %v", err)
		}
	}

	input, err := vm.NewInputBuffer(os.Stdin)
	if err != nil {
		log.Fatalf("Couldn't read stdin: %v", err)
	}

	out, flush := vm.NewStdoutSink(os.Stdout)
	defer flush()

	m := vm.NewMachine(p, input, out)
	m.Run()
}

func writeRegionDump(path string, p *program.Program) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return vm.DumpRegions(f, p)
}
