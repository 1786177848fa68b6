// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":    "0",
	"POSITION":  fmt.Sprintf("%d", MODE_POSITION),
	"IMMEDIATE": fmt.Sprintf("%d", MODE_IMMEDIATE),
	"RELATIVE":  fmt.Sprintf("%d", MODE_RELATIVE),
}

// mnemonicMap maps mnemonics to instruction kinds.
var mnemonicMap = func() map[string]Kind {
	mnemonics := map[string]Kind{}
	for kind := range kindParams {
		mnemonics[kind.String()] = kind
	}
	return mnemonics
}()

// link is a reference to a label that is resolved after parsing.
type link struct {
	index int    // Index into the opcode values.
	label string // Label to resolve.
}

// Assembler is a single pass assembler for Intcode.
//
// Each line holds optional labels ("name:"), then either an instruction
// ("add 9 #10 @-1"), a data directive (".data 1, 2, loop"), or an equate
// (".equ NAME value"). Operands are position mode by default, '#' selects
// immediate mode and '@' relative mode. Comments start with ';'. A $(...)
// group is evaluated as a Starlark expression over the equates defined
// so far.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	links map[int][]link // Unresolved labels, by opcode index.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// currentAddr gets the address of the next generated word.
func (asm *Assembler) currentAddr() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + len(last.Values)
}

// isLabel reports whether word could be a label name.
var isLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`).MatchString

// parenEval does $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value Value, err error) {
	defines := map[string]Value{}
	for key, str := range asm.Equate {
		v, err := ParseValue(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		defines[key] = v
	}
	for key, addr := range asm.Label {
		defines[key] = Int(int64(addr))
	}

	return Eval(expr, defines)
}

// parseLine expands a line into words, and handles labels and equates.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return value.String()
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !isLabel(label) {
			err = ErrLabelMissing(label)
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddr()
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words[1:] {
		prefix, name := splitOperand(word)
		equate, ok := asm.Equate[name]
		if ok {
			words[n+1] = prefix + equate
		}
	}

	return
}

// splitOperand splits the mode prefix from an operand.
func splitOperand(word string) (prefix string, atom string) {
	if len(word) > 0 && (word[0] == '#' || word[0] == '@') {
		return word[:1], word[1:]
	}
	return "", word
}

// valueOf returns the value of an atom, or the label it references.
func (asm *Assembler) valueOf(atom string) (value Value, label string, err error) {
	value, err = ParseValue(atom)
	if err == nil {
		return
	}

	if !isLabel(atom) {
		err = ErrOperandInvalid
		return
	}

	err = nil
	label = atom
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	var values []Value
	var links []link

	if words[0] == ".data" {
		if len(words) == 1 {
			err = ErrDataMissing
			return
		}
		for n, word := range words[1:] {
			value, label, err := asm.valueOf(word)
			if err != nil {
				return err
			}
			if len(label) != 0 {
				links = append(links, link{index: n, label: label})
			}
			values = append(values, value)
		}
	} else {
		kind, ok := mnemonicMap[words[0]]
		if !ok {
			err = ErrOpcodeUnknown
			return
		}
		args := words[1:]
		if len(args) != kind.Params() {
			err = ErrOpcodeArgs
			return
		}

		ins := Instruction{Kind: kind}
		values = make([]Value, 1+len(args))
		for n, arg := range args {
			prefix, atom := splitOperand(arg)
			switch prefix {
			case "#":
				ins.Modes[n] = MODE_IMMEDIATE
				if kind.Writes() && n == len(args)-1 {
					err = ErrOperandWritable
					return
				}
			case "@":
				ins.Modes[n] = MODE_RELATIVE
			}
			var label string
			values[1+n], label, err = asm.valueOf(atom)
			if err != nil {
				return
			}
			if len(label) != 0 {
				links = append(links, link{index: 1 + n, label: label})
			}
		}
		values[0] = ins.Encode()
	}

	if len(links) != 0 {
		if asm.links == nil {
			asm.links = map[int][]link{}
		}
		asm.links[len(asm.Opcode)] = links
	}

	opcode := Opcode{LineNo: lineno, Addr: asm.currentAddr(), Words: words, Values: values}
	asm.Opcode = append(asm.Opcode, opcode)

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = map[string]int{}
	asm.Opcode = asm.Opcode[:0]
	asm.links = nil
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for _, n := range slices.Sorted(maps.Keys(asm.links)) {
		op := &asm.Opcode[n]
		for _, ln := range asm.links[n] {
			addr, ok := asm.Label[ln.label]
			if !ok {
				lineno = op.LineNo
				line = strings.Join(op.Words, " ")
				err = ErrLabelMissing(ln.label)
				return
			}
			op.Values[ln.index] = Int(int64(addr))
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Labels:  maps.Clone(asm.Label),
	}

	return
}

// Assemble is a convenience wrapper that assembles source text.
func Assemble(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}
