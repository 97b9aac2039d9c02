package worker

// LedgerLen returns the number of dedup ledger entries
func (s *AlertScheduler) LedgerLen() int {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()
	return len(s.ledger)
}
