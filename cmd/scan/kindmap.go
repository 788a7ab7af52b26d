package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fralalonde/embedded-midi/pkg/midi"
	"go.uber.org/zap"
)

// kind -> channel (0 for system messages) -> count
type channelMap map[int]int
type kindMap map[string]channelMap

func messageKind(m midi.Message) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", m), "midi.")
}

func messageChannel(m midi.Message) int {
	p := midi.Encode(m)
	if ch, ok := p.Channel(); ok {
		return ch.Natural()
	}
	return 0
}

func (m kindMap) add(msg midi.Message) {
	kind := messageKind(msg)
	if _, ok := m[kind]; !ok {
		m[kind] = make(channelMap)
	}
	m[kind][messageChannel(msg)]++
}

func newKindMap(parent context.Context, paths <-chan string, cntRoutines int) (kindMap, error) {
	log := kindMapLog.Named("newKindMap")
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, paths, cntRoutines)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	m := make(kindMap)

	for result := range results {
		if result.err != nil {
			return nil, result.err
		}

		log.Debug("result",
			zap.String("name", result.name),
			zap.Int64("bytes", result.bytes),
			zap.Int("messages", len(result.messages)),
			zap.Int("invalid", result.invalid))

		for _, msg := range result.messages {
			m.add(msg)
		}
	}

	return m, nil
}
