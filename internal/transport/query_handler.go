package transport

import (
	"fmt"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// QueryHandler serves the latest snapshots over REST for clients that poll
// instead of subscribing.
type QueryHandler struct {
	reader    TelemetryReader
	marshaler gwruntime.Marshaler
	logger    *zap.Logger
}

func NewQueryHandler(reader TelemetryReader, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		reader:    reader,
		marshaler: &gwruntime.JSONBuiltin{},
		logger:    logger.Named("network.rest"),
	}
}

// Register mounts the query routes on mux.
func (h *QueryHandler) Register(mux *gwruntime.ServeMux) error {
	routes := map[string]func() any{
		"/v1/info/initial":    func() any { return h.reader.InitialInfo() },
		"/v1/info/machine":    func() any { return h.reader.MachineInfo() },
		"/v1/info/blockchain": func() any { return h.reader.BlockchainInfo() },
		"/v1/info/peers":      func() any { return h.reader.Peers() },
	}
	for path, get := range routes {
		if err := mux.HandlePath(http.MethodGet, path, h.handle(get)); err != nil {
			return fmt.Errorf("register %s: %w", path, err)
		}
	}
	return nil
}

func (h *QueryHandler) handle(get func() any) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		b, err := h.marshaler.Marshal(get())
		if err != nil {
			h.logger.Error("encode response", zap.String("path", r.URL.Path), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", h.marshaler.ContentType(nil))
		_, _ = w.Write(b)
	}
}
