//go:build !linux

// Package mpris exposes the playback service on the session bus. It is a
// no-op outside Linux.
package mpris

import "github.com/llehouerou/soundfeed/internal/playback"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ playback.Service) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
