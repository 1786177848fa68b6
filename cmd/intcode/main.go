// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	goio "io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/host"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/logs"
)

// patchList collects repeated -p flags.
type patchList []string

func (pl *patchList) String() string {
	return strings.Join(*pl, " ")
}

func (pl *patchList) Set(text string) error {
	if !strings.Contains(text, "=") {
		return fmt.Errorf("%v: expected addr=value", text)
	}
	*pl = append(*pl, text)
	return nil
}

func main() {
	var compile string
	var source string
	var configs []string
	var ascii bool
	var input string
	var output string
	var patches patchList
	var disasm bool
	var amp string
	var feedback bool
	var network int
	var maxSteps int
	var verbose bool
	var trace string
	var journal bool

	flag.StringVar(&compile, "c", "", "Intcode program to run")
	flag.StringVar(&source, "S", "", "Assembly source to assemble and run")
	flag.Func("f", "CUE run description (repeatable, first wins)", func(path string) error {
		configs = append(configs, path)
		return nil
	})
	flag.BoolVar(&ascii, "a", false, "ASCII input and output")
	flag.StringVar(&input, "i", "-", "Input")
	flag.StringVar(&output, "o", "-", "Output")
	flag.Var(&patches, "p", "Patch memory before running, as addr=value (repeatable)")
	flag.BoolVar(&disasm, "D", false, "Disassemble, do not execute")
	flag.StringVar(&amp, "amp", "", "Find the best amplifier order over these phases")
	flag.BoolVar(&feedback, "feedback", false, "Wire the amplifiers in a feedback loop")
	flag.IntVar(&network, "net", 0, "Run a network of this many NICs")
	flag.IntVar(&maxSteps, "max-steps", 0, "Step budget (0 for no limit)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&trace, "trace", "", "Write a JSON trace to this file")
	flag.BoolVar(&journal, "journal", false, "Also log to the systemd journal")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	run := &config.Run{}
	if len(configs) != 0 {
		var err error
		run, err = config.Load(configs...)
		if err != nil {
			log.Fatalf("%v: %v", strings.Join(configs, ","), err)
		}
	}

	// Explicit flags override the run description.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "a":
			run.ASCII = ascii
		case "feedback":
			run.Feedback = feedback
		case "net":
			run.Network = network
		case "max-steps":
			run.MaxSteps = int64(maxSteps)
		case "amp":
			values, err := intcode.ParseProgram(amp)
			if err != nil {
				log.Fatalf("-amp: %v", err)
			}
			run.Phases = run.Phases[:0]
			for _, value := range values {
				phase, _ := value.Int64()
				run.Phases = append(run.Phases, phase)
			}
		}
	})
	for _, patch := range patches {
		if run.Patch == nil {
			run.Patch = map[string]string{}
		}
		addr, value, _ := strings.Cut(patch, "=")
		run.Patch[addr] = value
	}

	logs.Verbose(verbose)
	var traceFile goio.Writer
	if len(trace) != 0 {
		ouf, err := os.Create(trace)
		if err != nil {
			log.Fatalf("%v: %v", trace, err)
		}
		defer ouf.Close()
		traceFile = ouf
	}
	var extra []slog.Handler
	if journal {
		handler, err := logs.Journal()
		if err != nil {
			log.Fatalf("journal: %v", err)
		}
		extra = append(extra, handler)
	}
	logger := logs.New(os.Stderr, traceFile, extra...)
	slog.SetDefault(logger)

	var m *intcode.Machine
	defines := map[string]intcode.Value{}

	switch {
	case len(source) != 0:
		inf, err := os.Open(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		defer inf.Close()

		asm := &intcode.Assembler{Verbose: verbose}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		for label, addr := range asm.Label {
			defines[label] = intcode.Int(int64(addr))
		}
		m = prog.Machine()
	default:
		if len(compile) == 0 {
			compile = run.Program
		}
		if len(compile) == 0 {
			log.Fatalf("%v: no program given (-c, -S, or -f)", os.Args[0])
		}
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		m, err = intcode.Load(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	patched, err := run.Patches(defines)
	if err != nil {
		log.Fatalf("patch: %v", err)
	}
	for addr, value := range patched {
		m.Write(addr, value)
	}

	m.Verbose = verbose
	m.Logger = logger
	m.MaxSteps = int(run.MaxSteps)

	var ouf goio.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	switch {
	case disasm:
		mem := m.Memory()
		for line := range intcode.Disassemble(mem, 0, mem.Len()) {
			fmt.Fprintln(ouf, line)
		}
	case len(run.Phases) != 0:
		var phases []intcode.Value
		for _, phase := range run.Phases {
			phases = append(phases, intcode.Int(phase))
		}
		best, order, err := host.MaxSignal(m, phases, run.Feedback)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(ouf, "%v %v\n", best, order)
	case run.Network != 0:
		net := host.NewNetwork(m, run.Network)
		net.Verbose = verbose
		net.Logger = logger
		net.MaxTicks = int(run.MaxSteps)
		first, repeat, err := net.Run()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(ouf, "%v\n%v\n", first, repeat)
	default:
		m.Push(run.Input...)
		m.PushString(run.Text)

		var inf goio.Reader = os.Stdin
		if input != "-" {
			file, err := os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer file.Close()
			inf = file
		}

		var ch io.Channel
		if run.ASCII {
			ch = &io.Tape{Input: inf, Output: ouf}
		} else {
			ch = &io.Numeric{Input: inf, Output: ouf}
		}

		err = io.Drive(m, ch)
		if err != nil {
			log.Fatalf("%v\n%v", err, m)
		}
	}
}
