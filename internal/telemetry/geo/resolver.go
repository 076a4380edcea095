// Package geo resolves peer IP addresses to ISO 3166-1 alpha-3 country codes.
package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"
)

const (
	lookupHit         = "hit"
	lookupMiss        = "miss"
	lookupUnsupported = "unsupported"
	lookupUnavailable = "unavailable"
)

// Resolver answers IP to country queries. A Resolver without a database is
// valid and resolves every address to "".
type Resolver struct {
	db      CountryDB
	index   *LocaleIndex
	metrics Metrics
	logger  *zap.Logger
}

// NewResolver wraps an already opened database. db may be nil.
func NewResolver(db CountryDB, index *LocaleIndex, metrics Metrics, logger *zap.Logger) *Resolver {
	if index == nil {
		index = NewLocaleIndex()
	}
	return &Resolver{
		db:      db,
		index:   index,
		metrics: metrics,
		logger:  logger.Named("geo"),
	}
}

// Open loads the database at path. Failure is logged once and leaves the
// resolver permanently without a database.
func Open(path string, index *LocaleIndex, metrics Metrics, logger *zap.Logger) *Resolver {
	log := logger.Named("geo")
	if path == "" {
		log.Warn("geoip database not configured, country lookup disabled")
		return NewResolver(nil, index, metrics, logger)
	}

	reader, err := geoip2.Open(path)
	if err != nil {
		log.Warn("geoip database not loaded, country lookup disabled", zap.String("path", path), zap.Error(err))
		return NewResolver(nil, index, metrics, logger)
	}

	log.Info("geoip database loaded", zap.String("path", path))
	return NewResolver(reader, index, metrics, logger)
}

// Available reports whether a database is loaded.
func (r *Resolver) Available() bool {
	return r.db != nil
}

// Resolve returns the 3-letter country code for an IPv4 address, or "".
func (r *Resolver) Resolve(ip string) string {
	if r.db == nil {
		r.observe(lookupUnavailable)
		return ""
	}

	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.To4() == nil {
		r.observe(lookupUnsupported)
		return ""
	}

	record, err := r.db.Country(parsed.To4())
	if err != nil {
		r.logger.Debug("country lookup failed", zap.String("ip", ip), zap.Error(err))
		r.observe(lookupMiss)
		return ""
	}
	if record == nil || record.Country.IsoCode == "" {
		r.observe(lookupMiss)
		return ""
	}

	code := r.index.Alpha3(record.Country.IsoCode)
	if code == "" {
		r.observe(lookupMiss)
		return ""
	}

	r.observe(lookupHit)
	return code
}

// Close releases the database.
func (r *Resolver) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Resolver) observe(result string) {
	if r.metrics != nil {
		r.metrics.ObserveLookup(result)
	}
}
