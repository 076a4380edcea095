package logbridge

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Publisher interface {
		Publish(ctx context.Context, topic model.Topic, payload any) error
	}

	Metrics interface {
		ObserveLine(channel string)
		ObserveDropped()
	}
)
