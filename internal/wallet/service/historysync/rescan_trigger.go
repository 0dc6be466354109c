package historysync

import (
	"context"
	"sync"
)

// OnPossibleCredit runs a forced scan over the deep rescan window. It is the
// hook for balance observers that saw a credit the history does not explain
// yet. The checkpoint is left untouched.
func (s *Service) OnPossibleCredit(ctx context.Context, address string) (ScanReport, error) {
	if err := s.ValidateAddress(address); err != nil {
		return ScanReport{Address: address}, err
	}
	return s.heartbeat.Scan(ctx, address, true)
}

// CreditSignal coalesces possible-credit notifications for a Runner. Any
// number of Notify calls between two runner iterations yield one forced scan.
type CreditSignal struct {
	once sync.Once
	ch   chan struct{}
}

func (c *CreditSignal) init() {
	c.once.Do(func() {
		c.ch = make(chan struct{}, 1)
	})
}

// Notify requests a forced rescan without blocking.
func (c *CreditSignal) Notify() {
	c.init()
	select {
	case c.ch <- struct{}{}:
	default:
	}
}

// C returns the channel a Runner waits on.
func (c *CreditSignal) C() <-chan struct{} {
	c.init()
	return c.ch
}

// CreditSignals routes possible-credit notifications to the signal of each
// followed address.
type CreditSignals map[string]*CreditSignal

// NotifyCredit signals the run loop of address. It reports false when the
// address is not followed.
func (s CreditSignals) NotifyCredit(address string) bool {
	signal, ok := s[address]
	if !ok {
		return false
	}
	signal.Notify()
	return true
}
