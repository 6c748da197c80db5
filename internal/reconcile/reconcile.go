// SPDX-License-Identifier: Apache-2.0

// Package reconcile implements the element-level merge used to converge
// divergent scene edits, plus the scene-version summary and the syncable
// filter the sync service gates on.
package reconcile

import (
	"sort"

	"github.com/sketchwell/collabsync/models"
)

// reconciler is the private implementation of [Reconciler].
type reconciler struct{}

// NewReconciler constructs the default [Reconciler].
func NewReconciler() Reconciler {
	return &reconciler{}
}

// SceneVersion implements [Reconciler]. The version of a set is the sum of
// its element versions: every element mutation bumps that element's
// version by one, so the sum never decreases for a linear edit history.
func (r *reconciler) SceneVersion(elements []models.Element) models.SceneVersion {
	var v models.SceneVersion
	for i := range elements {
		v += models.SceneVersion(elements[i].Version)
	}
	return v
}

// FilterSyncable implements [Reconciler]. Deleted elements and image
// placeholders whose binary payload has not been persisted yet are not
// eligible for remote persistence.
func (r *reconciler) FilterSyncable(elements []models.Element) []models.Element {
	out := make([]models.Element, 0, len(elements))
	for _, el := range elements {
		if el.IsDeleted || el.Status == models.FileStatusPending {
			continue
		}
		out = append(out, el)
	}
	return out
}

// Restore implements [Reconciler]. Remote snapshots may predate validation
// rules, so decoded elements are normalized: elements without an id are
// dropped, non-positive versions default to 1, and the set is re-sorted
// into canonical order.
func (r *reconciler) Restore(elements []models.Element) []models.Element {
	out := make([]models.Element, 0, len(elements))
	for _, el := range elements {
		if el.ID == "" {
			continue
		}
		if el.Version <= 0 {
			el.Version = 1
		}
		out = append(out, el)
	}
	sortCanonical(out)
	return out
}

// Reconcile implements [Reconciler]. The merge is keyed by element id: the
// remote element wins unless the local copy is strictly newer, where
// "newer" means a higher version, or an equal version with the lower
// version nonce as deterministic tiebreaker. The element currently being
// edited locally always keeps its local copy so an in-progress edit is
// never clobbered mid-stroke. Elements present on only one side pass
// through. The result is in canonical order, which together with the
// symmetric tiebreaker makes the merge convergent for non-conflicting
// edits.
func (r *reconciler) Reconcile(local, remote []models.Element, appState models.AppState) []models.Element {
	localByID := make(map[string]models.Element, len(local))
	for _, el := range local {
		localByID[el.ID] = el
	}

	merged := make([]models.Element, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local)+len(remote))

	for _, remoteEl := range remote {
		localEl, ok := localByID[remoteEl.ID]
		if ok && discardRemote(localEl, remoteEl, appState) {
			merged = append(merged, localEl)
		} else {
			merged = append(merged, remoteEl)
		}
		seen[remoteEl.ID] = struct{}{}
	}

	// Local-only elements: created on this side since the common ancestor.
	for _, el := range local {
		if _, ok := seen[el.ID]; ok {
			continue
		}
		merged = append(merged, el)
	}

	sortCanonical(merged)
	return merged
}

func discardRemote(local, remote models.Element, appState models.AppState) bool {
	if appState.EditingElementID != "" && appState.EditingElementID == local.ID {
		return true
	}
	if local.Version > remote.Version {
		return true
	}
	return local.Version == remote.Version && local.VersionNonce < remote.VersionNonce
}

// sortCanonical orders elements by fractional index, falling back to id so
// the order is total even when indices collide or are missing.
func sortCanonical(elements []models.Element) {
	sort.SliceStable(elements, func(i, j int) bool {
		a, b := elements[i], elements[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.ID < b.ID
	})
}
