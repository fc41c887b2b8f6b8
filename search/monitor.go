package search

import "github.com/hunnit/stylist/core"

// Monitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate stages during a query.
type Monitor interface {
	Start(query string)
	AfterEnrichment(category, enriched string)
	AfterRetrieval(chunks []core.CandidateChunk)
	AfterAggregation(ids []core.ID)
	AfterGraphContext(blocks []string)
	AfterSynthesis(answer string)
	Finish(results []core.RankedResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                         {}
func (n *noopMonitor) AfterEnrichment(_, _ string)            {}
func (n *noopMonitor) AfterRetrieval(_ []core.CandidateChunk) {}
func (n *noopMonitor) AfterAggregation(_ []core.ID)           {}
func (n *noopMonitor) AfterGraphContext(_ []string)           {}
func (n *noopMonitor) AfterSynthesis(_ string)                {}
func (n *noopMonitor) Finish(_ []core.RankedResult)           {}
