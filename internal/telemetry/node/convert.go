package node

import (
	"fmt"
	"math"
	"net"
	"strconv"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/pkg/safe"
)

func convertBlock(res *btcjson.GetBlockVerboseResult) (model.Block, error) {
	if res == nil {
		return model.Block{}, fmt.Errorf("empty block result")
	}

	height, err := safe.Uint64(res.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block height: %w", err)
	}
	difficulty, err := safe.Uint64FromFloat(res.Difficulty)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d difficulty: %w", height, err)
	}
	txCount, err := safe.Uint32(len(res.Tx))
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d tx count: %w", height, err)
	}

	return model.Block{
		Height:     height,
		Hash:       res.Hash,
		Timestamp:  res.Time,
		TxCount:    txCount,
		Difficulty: difficulty,
	}, nil
}

// convertActivePeer keys the peer by its address so it can be matched with
// the address registry. PingTime is reported in seconds.
func convertActivePeer(p btcjson.GetPeerInfoResult) model.ActivePeer {
	host, _, err := net.SplitHostPort(p.Addr)
	if err != nil {
		host = p.Addr
	}
	return model.ActivePeer{
		PeerID:           p.Addr,
		Host:             host,
		AvgLatencyMillis: int64(math.Round(p.PingTime * 1000)),
		Reputation:       int64(p.BanScore),
	}
}

func convertKnownPeer(a btcjson.GetNodeAddressesResult) model.KnownPeer {
	return model.KnownPeer{
		PeerID:    net.JoinHostPort(a.Address, strconv.Itoa(int(a.Port))),
		LastCheck: a.Time,
	}
}
