// Package model defines the value types exchanged between telemetry components.
package model

// Block is the read-only view of a chain block that the telemetry core keeps in its window.
type Block struct {
	Height     uint64
	Hash       string
	Timestamp  int64
	TxCount    uint32
	Difficulty uint64
}
