// Package commands contains the business operations of the order alerting service.
// Each command is validated through its constructor guard and executed by a handler
// that owns all orchestration and failure-isolation policy.
package commands

// Run outcomes passed to Recorder.RunFinished.
const (
	RunOutcomeSucceeded   = "succeeded"
	RunOutcomeFetchFailed = "fetch_failed"
	RunOutcomeOrderFailed = "order_failed"
	RunOutcomeCanceled    = "canceled"
)

// Recorder receives the outcome of every collaborator call made by a pass.
// internal/metrics provides the Prometheus implementation.
type Recorder interface {
	AlertSent()
	AlertFailed()
	OrderUpdated()
	OrderUpdateFailed()
	RunFinished(outcome string)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) AlertSent()         {}
func (NopRecorder) AlertFailed()       {}
func (NopRecorder) OrderUpdated()      {}
func (NopRecorder) OrderUpdateFailed() {}
func (NopRecorder) RunFinished(string) {}
