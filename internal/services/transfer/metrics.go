package transfer

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationResult(string, string) {}
func (n *NoopMetricsCollector) RecordFeeBurned(uint64)               {}
func (n *NoopMetricsCollector) RecordTransferVolume(uint64)          {}
