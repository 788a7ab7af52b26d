package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fralalonde/embedded-midi/pkg/midi"
	"github.com/fralalonde/embedded-midi/pkg/port"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	inFlag      = flag.String("i", "", "Input file, stdin when empty")
	outFlag     = flag.String("o", "", "Output file, stdout when empty")
	cableFlag   = flag.Int("cable", 0, "USB-MIDI cable number, 0-15")
	reverseFlag = flag.Bool("reverse", false, "Convert USB-MIDI packets back to serial MIDI bytes")
	runningFlag = flag.Bool("running", false, "Use running status when writing serial MIDI")
	verboseFlag = flag.Bool("v", false, "Print decoded messages to stderr")
	debugFlag   = flag.Bool("debug", false, "Enable debug logging")
)

var logger = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	logger = l
}

// printer decodes the packets it forwards.
type printer struct {
	next port.Transmitter
	w    io.Writer
}

func (p *printer) Transmit(list port.PacketList) error {
	for _, pkt := range list.Packets() {
		m, err := midi.Decode(pkt)
		if err != nil {
			fmt.Fprintf(p.w, "%v\t%v\n", pkt, err)
			continue
		}
		text := m.String()
		if cc, ok := m.(midi.ControlChange); ok {
			if mode, err := cc.Mode(); err == nil {
				text += " " + mode.String()
			}
		}
		if _, ok := midi.StatusByte(m); ok {
			fmt.Fprintf(p.w, "%v\t%s\t%s\n", pkt, text, port.ToGomidi(m))
		} else {
			fmt.Fprintf(p.w, "%v\t%s\n", pkt, text)
		}
	}
	return p.next.Transmit(list)
}

// parseCable checks the flag value before narrowing it to a byte.
func parseCable(n int) (midi.CableNumber, error) {
	if n < 0 || n > 0x0F {
		return 0, errors.Wrapf(midi.ErrInvalidCableNumber, "cable %d", n)
	}
	return midi.NewCableNumber(uint8(n))
}

func open() (io.ReadCloser, io.WriteCloser, error) {
	in, out := io.ReadCloser(os.Stdin), io.WriteCloser(os.Stdout)

	if *inFlag != "" {
		f, err := os.Open(*inFlag)
		if err != nil {
			return nil, nil, err
		}
		in = f
	}

	if *outFlag != "" {
		f, err := os.OpenFile(*outFlag, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			in.Close()
			return nil, nil, err
		}
		out = f
	}

	return in, out, nil
}

func run(ctx context.Context, cable midi.CableNumber) error {
	in, out, err := open()
	if err != nil {
		return err
	}
	defer func() {
		out.Close()
		in.Close()
	}()

	var src port.Receiver
	var dst port.Transmitter
	if *reverseFlag {
		src = port.NewUSBIn(in)
		serial := port.NewSerialOut(out)
		serial.RunningStatus = *runningFlag
		dst = serial
	} else {
		src = port.NewSerialIn(in, cable, logger)
		dst = port.NewUSBOut(out)
	}

	if *verboseFlag {
		dst = &printer{next: dst, w: os.Stderr}
	}

	return port.Bridge(ctx, src, dst, logger)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-reverse] [-i in] [-o out]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *debugFlag {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer l.Sync()
		enableDebugLogging(l)
	}

	cable, err := parseCable(*cableFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cable); err != nil && errors.Cause(err) != context.Canceled {
		log.Fatal(err)
	}
}
