// internal/state/interface.go
package state

// Interface defines the state store contract for dependency injection and testing.
type Interface interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	ClientID() (string, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
