package domain

// Status classifies how an analytical view was produced.
type Status string

const (
	// StatusComputed means the view was computed from the record set.
	StatusComputed Status = "computed"
	// StatusDegraded means prerequisites were missing or the analyzer failed;
	// the data is the typed placeholder.
	StatusDegraded Status = "degraded"
	// StatusFallback means the source lacked the field entirely and the view
	// holds the fixed illustrative figures.
	StatusFallback Status = "fallback"
)

// Outcome is the result of one analyzer. Data is always well-formed, even when
// the analyzer degraded.
type Outcome[T any] struct {
	// Status says how Data was produced.
	Status Status `json:"status"`
	// Reason explains a degraded or fallback status.
	Reason string `json:"reason,omitempty"`
	// Data is the view itself.
	Data T `json:"data"`
}

// Computed wraps a computed view.
func Computed[T any](data T) Outcome[T] {
	return Outcome[T]{Status: StatusComputed, Data: data}
}

// Degraded wraps a placeholder view with the reason it was used.
func Degraded[T any](data T, reason string) Outcome[T] {
	return Outcome[T]{Status: StatusDegraded, Reason: reason, Data: data}
}

// Fallback wraps a synthetic view with the reason it was used.
func Fallback[T any](data T, reason string) Outcome[T] {
	return Outcome[T]{Status: StatusFallback, Reason: reason, Data: data}
}

// IsDegraded reports whether the placeholder was returned.
func (o Outcome[T]) IsDegraded() bool {
	return o.Status == StatusDegraded
}
