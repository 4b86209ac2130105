//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appconfig "audio-transcriber/internal/app/config"
	"audio-transcriber/internal/app/converter"
	envconfig "audio-transcriber/internal/config"
)

// InitializeConverter wires a Converter around the configured remote transcriber.
func InitializeConverter(cfg *appconfig.BatchConfig, keys *envconfig.APIKeys, logger *zap.Logger, metrics *converter.Metrics, opts converter.Options) (*converter.Converter, error) {
	wire.Build(converter.NewConverter, provideTranscriber)
	return &converter.Converter{}, nil
}
