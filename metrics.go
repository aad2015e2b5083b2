package imt

import "sync/atomic"

// Metrics tracks operation statistics for a tree.
type Metrics struct {
	inserts       atomic.Uint64
	updates       atomic.Uint64
	hashes        atomic.Uint64
	siblingHits   atomic.Uint64
	siblingMisses atomic.Uint64
	pathReads     atomic.Uint64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordInsert records a completed insertion.
func (m *Metrics) RecordInsert() {
	m.inserts.Add(1)
}

// RecordUpdate records a completed value update.
func (m *Metrics) RecordUpdate() {
	m.updates.Add(1)
}

// RecordHash records one digest computation.
func (m *Metrics) RecordHash() {
	m.hashes.Add(1)
}

// RecordSibling records a sibling cache lookup during a refresh climb.
func (m *Metrics) RecordSibling(present bool) {
	if present {
		m.siblingHits.Add(1)
	} else {
		m.siblingMisses.Add(1)
	}
}

// RecordPathRead records a read-only sibling path capture.
func (m *Metrics) RecordPathRead() {
	m.pathReads.Add(1)
}

// Inserts returns the total number of completed insertions.
func (m *Metrics) Inserts() uint64 {
	return m.inserts.Load()
}

// Updates returns the total number of completed value updates.
func (m *Metrics) Updates() uint64 {
	return m.updates.Load()
}

// Hashes returns the total number of digest computations.
func (m *Metrics) Hashes() uint64 {
	return m.hashes.Load()
}

// SiblingHits returns the number of refresh lookups that found a cached sibling.
func (m *Metrics) SiblingHits() uint64 {
	return m.siblingHits.Load()
}

// SiblingMisses returns the number of refresh lookups into never-populated positions.
func (m *Metrics) SiblingMisses() uint64 {
	return m.siblingMisses.Load()
}

// PathReads returns the number of read-only path captures.
func (m *Metrics) PathReads() uint64 {
	return m.pathReads.Load()
}

// SiblingHitRatio returns the fraction of refresh lookups that found a
// cached sibling (0.0 - 1.0).
func (m *Metrics) SiblingHitRatio() float64 {
	hits := m.siblingHits.Load()
	misses := m.siblingMisses.Load()
	total := hits + misses

	if total == 0 {
		return 0.0
	}

	return float64(hits) / float64(total)
}

// Reset resets all metrics to zero.
func (m *Metrics) Reset() {
	m.inserts.Store(0)
	m.updates.Store(0)
	m.hashes.Store(0)
	m.siblingHits.Store(0)
	m.siblingMisses.Store(0)
	m.pathReads.Store(0)
}
