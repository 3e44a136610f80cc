// nesrun loads a flat program image, runs the 2A03 core for a cycle
// budget and dumps the resulting state. With --trace it prints the bus
// trace, and with --disassemble a code/data aware disassembly, which
// makes it a quick harness for CPU test ROM images.
package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/jmchacon/2a03/cpu"
	"github.com/jmchacon/2a03/disassemble"
	"github.com/jmchacon/2a03/memory"
	"github.com/jmchacon/2a03/monitor"
	cli "gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:  "nesrun",
		Usage: "run a flat 6502 image on the 2A03 core",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "image",
				Usage: "binary image, loaded so it ends at $FFFF (vectors included)",
			},
			&cli.IntFlag{
				Name:  "cycles",
				Value: 100000,
				Usage: "cycle budget to grant the core",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print the bus trace after the run",
			},
			&cli.IntFlag{
				Name:  "trace-depth",
				Value: 4096,
				Usage: "samples kept in the trace ring",
			},
			&cli.BoolFlag{
				Name:  "disassemble",
				Usage: "print a disassembly of the image using the executed-code mask",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	path := c.String("image")
	if path == "" {
		return errors.New("--image is required")
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %v", path, err)
	}
	if len(data) > 1<<16 {
		return fmt.Errorf("image %s is %d bytes, max is 64k", path, len(data))
	}
	origin := uint16(1<<16 - len(data))

	bus := memory.NewFlat()
	for i, b := range data {
		bus.Poke(origin+uint16(i), b)
	}

	tracer := monitor.NewRing(c.Int("trace-depth"))
	cdl := monitor.NewCodeDataLog()
	breaks := monitor.NewSet()
	chip, err := cpu.Init(&cpu.ChipDef{
		Bus:         bus,
		Tracer:      tracer,
		CdLog:       cdl,
		Breakpoints: breaks,
	})
	if err != nil {
		return err
	}

	runErr := chip.Emulate(c.Int("cycles"))
	var halt cpu.HaltOpcode
	switch {
	case runErr == nil:
	case errors.As(runErr, &halt):
		log.Printf("CPU halted: %v", runErr)
	default:
		return runErr
	}

	fmt.Printf("cycles: %d\n", chip.Cycles())
	fmt.Printf("A: $%02X X: $%02X Y: $%02X S: $%02X P: $%02X PC: $%04X\n",
		chip.A, chip.X, chip.Y, chip.S, chip.P, chip.PC)
	if breaks.BreakRequested() {
		fmt.Println("forced break latched")
	}

	if c.Bool("trace") {
		for _, ev := range tracer.Events() {
			fmt.Printf("%8d EVENT %s\n", ev.Cycle, ev.Event)
		}
		for _, s := range tracer.Samples() {
			fmt.Println(s)
		}
	}

	if c.Bool("disassemble") {
		mask := cdl.CodeMask(origin, len(data))
		for _, line := range disassemble.Listing(data, origin, mask) {
			fmt.Println(line)
		}
	}
	return nil
}
