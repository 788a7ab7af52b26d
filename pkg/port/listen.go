package port

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/fralalonde/embedded-midi/pkg/midi"
	"go.uber.org/zap"
)

// Listener pulls packets from a Receiver and delivers them in batches on a
// bounded channel.
type Listener struct {
	out chan<- PacketList
	log *zap.Logger

	// Drop makes delivery non-blocking: a batch the consumer cannot take
	// right away is discarded and counted.
	Drop bool

	dropped int64
}

// NewListener delivers on out. log may be nil.
func NewListener(out chan<- PacketList, log *zap.Logger) *Listener {
	if log == nil {
		log = zap.NewNop()
	}
	return &Listener{out: out, log: log.Named("listener")}
}

// Dropped returns the number of packets discarded so far.
func (l *Listener) Dropped() int64 {
	return atomic.LoadInt64(&l.dropped)
}

type received struct {
	p   midi.Packet
	err error
}

// pollInterval paces receivers that report no pending packet.
const pollInterval = time.Millisecond

func receiveWorker(ctx context.Context, r Receiver) <-chan received {
	out := make(chan received, MaxPackets)

	go func() {
		defer close(out)

		for {
			p, ok, err := r.Receive()
			if !ok && err == nil {
				select {
				case <-ctx.Done():
					return
				case <-time.After(pollInterval):
					continue
				}
			}

			select {
			case out <- received{p: p, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	return out
}

// Run delivers batches until ctx is done or the receiver fails. It returns
// nil when the receiver reaches io.EOF. A Receive call blocked in the
// underlying reader is only released when that reader is closed.
func (l *Listener) Run(ctx context.Context, r Receiver) error {
	ctx, cancel := context.WithCancel(ctx)
	packets := receiveWorker(ctx, r)
	defer cancel()

	for {
		var list PacketList
		var rerr error

		// block for the first packet, then take whatever is already queued
		select {
		case item, ok := <-packets:
			if !ok {
				return ctx.Err()
			}
			if item.err != nil {
				return l.finish(item.err)
			}
			_ = list.Push(item.p)
		case <-ctx.Done():
			return ctx.Err()
		}

	drain:
		for !list.Full() {
			select {
			case item, ok := <-packets:
				if !ok {
					break drain
				}
				if item.err != nil {
					rerr = item.err
					break drain
				}
				_ = list.Push(item.p)
			default:
				break drain
			}
		}

		if err := l.deliver(ctx, list); err != nil {
			return err
		}
		if rerr != nil {
			return l.finish(rerr)
		}
	}
}

func (l *Listener) deliver(ctx context.Context, list PacketList) error {
	if l.Drop {
		select {
		case l.out <- list:
		default:
			atomic.AddInt64(&l.dropped, int64(list.Len()))
			l.log.Debug("batch dropped", zap.Int("packets", list.Len()), zap.Error(midi.ErrDroppedPacket))
		}
		return nil
	}

	select {
	case l.out <- list:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Listener) finish(err error) error {
	if err == io.EOF {
		l.log.Debug("receiver exhausted")
		return nil
	}
	return err
}
