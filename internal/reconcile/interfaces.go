package reconcile

//go:generate mockgen -source=interfaces.go -destination=../mock/reconcile_mock.go -package=mock

import "github.com/sketchwell/collabsync/models"

// Reconciler is the element-level merge capability the sync service
// depends on. It is deliberately narrow so the service depends on the
// contract, not on a concrete merge strategy, and tests can substitute
// deterministic fakes.
type Reconciler interface {
	// SceneVersion computes the ordering scalar summarizing elements.
	SceneVersion(elements []models.Element) models.SceneVersion

	// Restore normalizes elements decoded from a remote snapshot so the
	// rest of the pipeline can rely on well-formed ids, versions and
	// ordering.
	Restore(elements []models.Element) []models.Element

	// Reconcile merges two divergent element sets that share a common
	// ancestor into one convergent ordered set. Convergence for
	// non-conflicting edits holds regardless of argument order.
	Reconcile(local, remote []models.Element, appState models.AppState) []models.Element

	// FilterSyncable keeps only elements eligible for remote persistence.
	FilterSyncable(elements []models.Element) []models.Element
}
