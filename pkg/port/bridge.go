package port

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Bridge forwards packets from src to dst until ctx is done, src is
// exhausted or either side fails.
func Bridge(ctx context.Context, src Receiver, dst Transmitter, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("bridge")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lists := make(chan PacketList, 4)
	errc := make(chan error, 1)
	go func() {
		errc <- NewListener(lists, log).Run(ctx, src)
		close(lists)
	}()

	for list := range lists {
		if err := dst.Transmit(list); err != nil {
			return errors.Wrap(err, "bridge transmit")
		}
		log.Debug("forwarded", zap.Int("packets", list.Len()))
	}

	if err := <-errc; err != nil {
		return errors.Wrap(err, "bridge receive")
	}
	return nil
}
