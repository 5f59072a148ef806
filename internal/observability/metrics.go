package observability

// MetricKey names an instrument; adapters prefix it with the configured namespace.
type MetricKey string

const (
	MUsecaseRequests        MetricKey = "usecase_requests_total"
	MUsecaseDuration        MetricKey = "usecase_duration_seconds"
	MHTTPRequests           MetricKey = "http_requests_total"
	MHTTPRequestDuration    MetricKey = "http_request_duration_seconds"
	MStoreOperations        MetricKey = "store_operations_total"
	MStoreOperationDuration MetricKey = "store_operation_duration_seconds"
)

// Metrics resolves instruments by key. Unknown keys resolve to no-ops.
type Metrics interface {
	Counter(name MetricKey) Counter
	Histogram(name MetricKey) Histogram
}

type Counter interface {
	Add(delta float64, labels ...Label)
}

type Histogram interface {
	Observe(value float64, labels ...Label)
}

// Label values must come from a bounded set: route templates, outcomes, status codes.
type Label struct{ Key, Value string }

func L(key, value string) Label { return Label{Key: key, Value: value} }
