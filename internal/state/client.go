package state

import "github.com/google/uuid"

const clientIDKey = "client_id"

// ClientID returns this installation's anonymous id, creating it on first
// use. It is sent as the user name when registering downloads.
func (m *Manager) ClientID() (string, error) {
	id, ok, err := m.Get(clientIDKey)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := m.Set(clientIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}
