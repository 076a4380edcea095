package transport

import (
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HubMetrics interface {
		ObservePublish(topic string, delivered, dropped int)
		SetSubscribers(topic string, n int)
	}

	TelemetryReader interface {
		InitialInfo() model.InitialInfo
		MachineInfo() model.MachineSnapshot
		BlockchainInfo() model.BlockchainSnapshot
		Peers() []model.PeerRecord
	}
)
