// Package host orchestrates several Intcode machines from one goroutine.
//
// Machines never share state; a host wires them together by moving values
// from one machine's output to another's input queue, and decides the
// order in which they run.
package host
