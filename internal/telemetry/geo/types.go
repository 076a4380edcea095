package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// CountryDB is the subset of the GeoIP reader used for lookups.
	CountryDB interface {
		Country(ip net.IP) (*geoip2.Country, error)
		Close() error
	}

	Metrics interface {
		ObserveLookup(result string)
	}
)
