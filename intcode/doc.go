// Package intcode implements the Intcode virtual machine.
//
// A Machine interprets a stored program of signed integers as both code
// and data. Memory is sparse and grows on demand, and every unset address
// reads as zero. Each instruction word selects one of ten operations in its
// low two decimal digits; the remaining digits select the addressing mode
// (position, immediate or relative) of each parameter.
//
// Execution is cooperative. A host drives a Machine with Step, RunUntilOutput
// or Run, and feeds it through its input queue. A Machine suspends, rather
// than fails, when it needs input that has not arrived yet, so several
// Machines can be interleaved from a single goroutine.
//
// The package also carries a small assembler and disassembler for the
// instruction set.
package intcode
