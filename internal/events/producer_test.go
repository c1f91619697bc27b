package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilProducerIsNoOp(t *testing.T) {
	var p *KafkaProducer

	// Must not panic when kafka is not configured.
	p.Publish(context.Background(), "lawyer_created", map[string]any{"lawyer_id": 1})
	require.NoError(t, p.Close())
}
