// Package handshake drives one client-side SRP-6a exchange over a Transport.
//
//go:generate go tool mockgen -destination=mock_transport.go -package=handshake github.com/fzdarsky/srp6a/internal/handshake Transport
package handshake
