// Package service orchestrates the core components of the extent
// index: the in-memory map, the WAL, the outbox, and the extent pool.
//
// It provides a clean API for mapping, unmapping, and querying
// extents, decoupled from network transports like gRPC.
package service
