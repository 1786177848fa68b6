// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package host

import (
	"log/slog"

	"github.com/ezrec/intcode/intcode"
)

const (
	NAT_ADDRESS = 255 // Packets for this address are held by the NAT.
	IDLE_POLLS  = 2   // Empty polls before a NIC counts as idle.
)

// NO_PACKET is the input a NIC receives when its queue is empty.
var NO_PACKET = intcode.Int(-1)

// Packet is a message between NICs.
type Packet struct {
	Dest int
	X, Y intcode.Value
}

// Nic is one network interface, running its own copy of the program.
type Nic struct {
	*intcode.Machine
	Address int

	idle    int             // Consecutive empty polls.
	pending []intcode.Value // Output words of a partial packet.
}

// Idle reports whether the NIC has nothing to do. Any packet delivered
// to the NIC resets its poll count, so an idle NIC has at most a
// NO_PACKET queued.
func (nic *Nic) Idle() bool {
	if nic.Halted {
		return true
	}
	return nic.idle >= IDLE_POLLS && len(nic.pending) == 0
}

// Network is a packet switched network of NICs with a NAT.
//
// NICs are stepped one instruction at a time, round robin. A NIC that asks
// for input with nothing queued receives NO_PACKET. Every packet for
// NAT_ADDRESS replaces the one the NAT holds; once every NIC is idle, the
// NAT delivers its packet to address 0.
type Network struct {
	Verbose  bool         // If set, logs packet traffic.
	Logger   *slog.Logger // If nil, slog.Default() is used.
	MaxTicks int          // Ticks before Run gives up. Zero means no limit.

	Nics  []*Nic
	Ticks int

	Nat       *Packet         // Packet held by the NAT.
	FirstNat  *Packet         // First packet the NAT received.
	Delivered []intcode.Value // Y values the NAT has delivered, in order.
}

// NewNetwork boots size NICs from template, each given its address.
func NewNetwork(template *intcode.Machine, size int) (net *Network) {
	net = &Network{}
	for n := range size {
		nic := &Nic{
			Machine: template.Clone(),
			Address: n,
		}
		nic.PushInt(int64(n))
		net.Nics = append(net.Nics, nic)
	}

	return
}

func (net *Network) logger() *slog.Logger {
	if net.Logger != nil {
		return net.Logger
	}
	return slog.Default()
}

// route delivers a completed packet.
func (net *Network) route(from *Nic, words []intcode.Value) (err error) {
	dest, ok := words[0].Int64()
	if !ok {
		err = ErrPacketAddress
		return
	}

	packet := &Packet{Dest: int(dest), X: words[1], Y: words[2]}
	if net.Verbose {
		net.logger().Info("host: packet",
			slog.Int("from", from.Address),
			slog.Int("to", packet.Dest),
			slog.String("x", packet.X.String()),
			slog.String("y", packet.Y.String()),
		)
	}

	switch {
	case dest == NAT_ADDRESS:
		net.Nat = packet
		if net.FirstNat == nil {
			net.FirstNat = packet
		}
	case dest >= 0 && dest < int64(len(net.Nics)):
		to := net.Nics[dest]
		to.Push(packet.X, packet.Y)
		to.idle = 0
	default:
		err = ErrPacketAddress
	}

	return
}

// Idle reports whether every NIC is idle.
func (net *Network) Idle() bool {
	for _, nic := range net.Nics {
		if !nic.Idle() {
			return false
		}
	}
	return true
}

// Tick steps every NIC by one instruction.
func (net *Network) Tick() (err error) {
	for _, nic := range net.Nics {
		ev, value, err := nic.Step()
		if err != nil {
			return &ErrInstance{Index: nic.Address, Err: err}
		}

		switch ev {
		case intcode.EVENT_INPUT:
			nic.Push(NO_PACKET)
			nic.idle++
		case intcode.EVENT_OUTPUT:
			nic.idle = 0
			nic.pending = append(nic.pending, value)
			if len(nic.pending) == 3 {
				words := nic.pending
				nic.pending = nil
				err = net.route(nic, words)
				if err != nil {
					return &ErrInstance{Index: nic.Address, Err: err}
				}
			}
		}
	}

	net.Ticks++

	return
}

// Run ticks the network until the NAT delivers the same Y value twice in
// a row. It returns the Y of the first packet the NAT received, and the
// repeated Y.
func (net *Network) Run() (first, repeat intcode.Value, err error) {
	for {
		if net.MaxTicks > 0 && net.Ticks >= net.MaxTicks {
			err = ErrStepLimit
			return
		}

		err = net.Tick()
		if err != nil {
			return
		}

		if !net.Idle() {
			continue
		}

		if net.Nat == nil || len(net.Nics) == 0 {
			err = ErrDeadlock
			return
		}

		y := net.Nat.Y
		if count := len(net.Delivered); count > 0 && net.Delivered[count-1].Equal(y) {
			return net.FirstNat.Y, y, nil
		}

		net.Delivered = append(net.Delivered, y)
		nic := net.Nics[0]
		nic.Push(net.Nat.X, net.Nat.Y)
		nic.idle = 0

		if net.Verbose {
			net.logger().Info("host: nat", slog.String("y", y.String()))
		}
	}
}
