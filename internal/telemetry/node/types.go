package node

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBestBlockHash() (*chainhash.Hash, error)
		GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetPeerInfo() ([]btcjson.GetPeerInfoResult, error)
		GetNodeAddresses(count *int32) ([]btcjson.GetNodeAddressesResult, error)
	}

	BreakerMetrics interface {
		ObserveBreakerState(name, from, to string)
	}

	BlockSource interface {
		TipHeight(ctx context.Context) (uint64, error)
		BlockAt(ctx context.Context, height uint64) (model.Block, error)
	}

	BlockSink interface {
		OnBlockArrived(b model.Block)
	}

	FollowerMetrics interface {
		ObserveSync(err error, blocks int, started time.Time)
		SetTipHeight(height uint64)
	}
)
