package main

import "go.uber.org/zap"

var decoderLog = zap.NewNop()
var kindMapLog = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	decoderLog = l
	kindMapLog = l
}
