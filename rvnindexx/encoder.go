package rvnindexx

import (
	"context"
	"encoding/json"

	"github.com/rvncorex/rvncorex/zaputils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Encoder produces the wire form of index definitions for a transport.
type Encoder struct {
	Logger *zap.Logger
}

func (e Encoder) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e Encoder) EncodeIndexDefinition(ctx context.Context, def *IndexDefinition) (json.RawMessage, error) {
	logger := e.logger().With(
		zaputils.IndexName("index", def.Name),
		zaputils.IndexType("type", string(def.Type())))

	raw, err := def.EncodeJSON()
	if err != nil {
		encodeFailures.Add(ctx, 1)
		logger.Debug("failed to encode index definition", zap.Error(err))
		return nil, err
	}

	encodedDefinitions.Add(ctx, 1,
		metric.WithAttributes(attribute.String("type", string(def.Type()))))
	logger.Debug("encoded index definition",
		zap.Int("num-maps", len(def.maps)),
		zap.Int("num-fields", len(def.Fields)),
		zap.Int("size", len(raw)))

	return raw, nil
}

// EncodeIndexDefinitions encodes a batch of definitions, keyed by index name.
func (e Encoder) EncodeIndexDefinitions(ctx context.Context, defs []*IndexDefinition) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(defs))
	for _, def := range defs {
		raw, err := e.EncodeIndexDefinition(ctx, def)
		if err != nil {
			return nil, err
		}
		out[def.Name] = raw
	}

	return out, nil
}
