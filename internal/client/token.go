package client

import (
	"sync"
)

// TokenGetter produces a bearer token on demand. The auth collaborator
// registers one at startup; the mock itself never mints tokens.
type TokenGetter func() (string, error)

var (
	tokenMu     sync.RWMutex
	tokenGetter TokenGetter
)

// SetTokenGetter installs or clears (nil) the process-wide token source.
func SetTokenGetter(getter TokenGetter) {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	tokenGetter = getter
}

// ResolveToken returns the current bearer token. A missing or failing
// getter yields an empty token; requests proceed unauthenticated rather
// than failing.
func ResolveToken() string {
	tokenMu.RLock()
	getter := tokenGetter
	tokenMu.RUnlock()

	if getter == nil {
		return ""
	}
	token, err := getter()
	if err != nil {
		return ""
	}
	return token
}
