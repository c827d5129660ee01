// Package auth is the consent collaborator: it answers whether a
// principal currently authorizes a call made in its name. The ledgers
// consult it but never implement it; deployments decide what consent
// means (session auth, signatures, or an operator allow-list).
package auth

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Authorizer reports whether principal consents to the current call.
type Authorizer interface {
	Authorized(principal common.Address) bool
}

// AllowAll consents on behalf of every principal. Used when consent is
// enforced upstream of the service.
type AllowAll struct{}

func (AllowAll) Authorized(common.Address) bool { return true }

// ConsentSet authorizes exactly the principals granted to it. Tests use
// it to exercise consent failures.
type ConsentSet struct {
	mu      sync.RWMutex
	granted map[common.Address]bool
}

func NewConsentSet(principals ...common.Address) *ConsentSet {
	s := &ConsentSet{granted: make(map[common.Address]bool)}
	for _, p := range principals {
		s.granted[p] = true
	}
	return s
}

func (s *ConsentSet) Grant(p common.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granted[p] = true
}

func (s *ConsentSet) Revoke(p common.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.granted, p)
}

func (s *ConsentSet) Authorized(p common.Address) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.granted[p]
}
