// Command circuitsim loads a netlist, runs it through the transient
// loop tick by tick, and prints a results table. Ticks run back to back
// without waiting; each one passes the fixed -interval to the loop as
// its wall-clock delta. It is the host: the core packages know nothing about files,
// flags, or the clock.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/nodalsim/mna/pkg/assembler"
	"github.com/nodalsim/mna/pkg/element"
	"github.com/nodalsim/mna/pkg/netlist"
	"github.com/nodalsim/mna/pkg/transient"
	"github.com/nodalsim/mna/pkg/util"
	"github.com/nodalsim/mna/pkg/waveform"
)

func main() {
	ticks := flag.Int("ticks", 200, "number of driver ticks to run")
	tickInterval := flag.Duration("interval", 10*time.Millisecond, "wall-clock duration represented by each tick")
	plotPath := flag.String("plot", "", "optional PNG path to render recorded node voltages to")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: circuitsim [flags] <netlist-file>")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Error("reading netlist", slog.Any("error", err))
		os.Exit(1)
	}

	deck, err := netlist.Parse(string(content))
	if err != nil {
		logger.Error("parsing netlist", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("loaded netlist", slog.String("title", deck.Title), slog.Int("elements", len(deck.Elements)))

	static, err := assembler.BuildStatic(deck.Elements)
	if err != nil {
		logger.Error("assembling static system", slog.Any("error", err))
		os.Exit(1)
	}

	loop := transient.NewLoop(logger)
	state := transient.NewState()

	voltageNodes := namedVoltageNodes(deck.Nodes)

	var times []float64
	series := make(map[string][]float64, len(voltageNodes))

	delta := tickInterval.Seconds()
	for i := 0; i < *ticks; i++ {
		if err := loop.Step(state, static, deck.Elements, delta); err != nil {
			logger.Error("transient step", slog.Any("error", err))
			os.Exit(1)
		}
		times = append(times, state.SimTime())
		for _, nv := range voltageNodes {
			series[nv.name] = append(series[nv.name], state.NodeVoltage(nv.index))
		}
	}

	printResults(times, voltageNodes, series, deck.Elements, state)

	if *plotPath != "" {
		rec := waveform.Recording{Times: times}
		for _, nv := range voltageNodes {
			rec.Series = append(rec.Series, waveform.Series{Label: "V(" + nv.name + ")", Values: series[nv.name]})
		}
		if err := waveform.Plot(rec, deck.Title, *plotPath); err != nil {
			logger.Error("writing waveform", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("wrote waveform", slog.String("path", *plotPath))
	}

	if failed := state.FailedSteps(); failed > 0 {
		logger.Warn("some timesteps were unsolvable and were skipped", slog.Int("count", failed))
	}
}

type namedNode struct {
	name  string
	index int
}

func namedVoltageNodes(nodes map[string]int) []namedNode {
	out := make([]namedNode, 0, len(nodes))
	for name, idx := range nodes {
		out = append(out, namedNode{name: name, index: idx})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out
}

func printResults(times []float64, nodes []namedNode, series map[string][]float64, elements []element.Element, state *transient.State) {
	fmt.Println("\nTransient Analysis Results:")
	fmt.Printf("%-12s", "Time(s)")
	for _, nv := range nodes {
		fmt.Printf("V(%-8s", nv.name+")")
	}
	fmt.Println()

	for i, t := range times {
		fmt.Printf("%-12s", util.FormatValueFactor(t, "s"))
		for _, nv := range nodes {
			fmt.Printf("%-14s", util.FormatValueFactor(series[nv.name][i], "V"))
		}
		fmt.Println()
	}

	fmt.Println("\nFinal branch currents:")
	for _, e := range elements {
		br, ok := e.(element.Branched)
		if !ok {
			continue
		}
		fmt.Printf("  I(%s) = %s\n", element.DisplayName(e), util.FormatValueFactor(state.BranchCurrent(br.Branch()), "A"))
	}
}
