package provider

import "time"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики запросов к провайдеру (реализуется pkg/metrics)
type Metrics interface {
	ObserveProviderRequest(result string, duration time.Duration)
	AddDroppedSlots(n int)
}
