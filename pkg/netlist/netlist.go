// Package netlist loads a flat text circuit description into the
// element records pkg/assembler needs. The line format borrows its
// shape from SPICE decks: one element per line, name first, node names
// next, value last, with engineering-notation suffixes on the value.
package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nodalsim/mna/pkg/element"
)

var unitMap = map[string]float64{
	"T":   1e12,
	"G":   1e9,
	"meg": 1e6,
	"K":   1e3,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var valuePattern = regexp.MustCompile(`^([-+]?\d*\.?\d+)(meg|[TGKkmunpf])?$`)

// ParseValue converts an engineering-notation literal such as "5u" or
// "4.7k" into its float value.
func ParseValue(raw string) (float64, error) {
	matches := valuePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", raw)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}
	if matches[2] != "" {
		num *= unitMap[matches[2]]
	}
	return num, nil
}

// Deck is a parsed netlist: its elements plus the node-name table used
// to resolve them, for diagnostics and the demo driver's result table.
type Deck struct {
	Title    string
	Elements []element.Element
	Nodes    map[string]int // node name -> assigned index, "0"/"gnd" always 0
}

func nodeIndex(nodes map[string]int, name string) int {
	if name == "0" || strings.EqualFold(name, "gnd") {
		return 0
	}
	if idx, ok := nodes[name]; ok {
		return idx
	}
	idx := len(nodes) + 1
	nodes[name] = idx
	return idx
}

// Parse reads a netlist deck. The first line is taken as a title
// comment; blank lines and lines starting with "*" are ignored.
// Supported element lines:
//
//	R<name> n1 n2 <ohms>
//	C<name> n1 n2 <farads>
//	V<name> n1 n2 <volts>
//	I<name> n1 n2 <amps>
//	W<name> n1 n2        (zero-volt wire)
//	G<name> n1           (ties n1 to ground)
func Parse(input string) (*Deck, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	deck := &Deck{Nodes: make(map[string]int)}

	if scanner.Scan() {
		deck.Title = strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "*"))
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		el, err := parseLine(line, deck.Nodes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		deck.Elements = append(deck.Elements, el)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return deck, nil
}

func parseLine(line string, nodes map[string]int) (element.Element, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("invalid element line: %q", line)
	}
	name := fields[0]
	kind := strings.ToUpper(name[:1])

	if kind == "G" {
		if len(fields) != 2 {
			return nil, fmt.Errorf("ground %q wants exactly one node", name)
		}
		return element.NewGround(name, nodeIndex(nodes, fields[1])), nil
	}

	if len(fields) < 3 {
		return nil, fmt.Errorf("element %q needs at least two nodes", name)
	}
	n1 := nodeIndex(nodes, fields[1])
	n2 := nodeIndex(nodes, fields[2])

	if kind == "W" {
		return element.NewWire(name, n1, n2), nil
	}

	if len(fields) < 4 {
		return nil, fmt.Errorf("element %q is missing its value", name)
	}
	value, err := ParseValue(fields[3])
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", name, err)
	}

	switch kind {
	case "R":
		return element.NewResistor(name, n1, n2, value), nil
	case "C":
		return element.NewCapacitor(name, n1, n2, value), nil
	case "V":
		return element.NewVoltageSource(name, n1, n2, value), nil
	case "I":
		return element.NewCurrentSource(name, n1, n2, value), nil
	default:
		return nil, fmt.Errorf("unsupported element type %q in %q", kind, name)
	}
}
