// Package query provides the filter, sort and truncate operations the
// console's list views apply to request collections. Every operation is a
// pure function of its inputs: the source slice is never mutated, results
// are fresh slices, and sorts are stable with insertion order as tie-break.
package query

import (
	"sort"
	"strings"

	"recipehub-admin-api/internal/model"
	"recipehub-admin-api/pkg/reqid"
)

// SortField names a sortable request attribute.
type SortField string

const (
	SortByID      SortField = "request_id"
	SortByCreated SortField = "created_at"
	SortByGoLive  SortField = "go_live_at"
)

// Sort is a sort selection: a field plus a direction.
type Sort struct {
	Field SortField
	Desc  bool
}

// NextSort returns the sort that results from the user selecting field while
// current is active: selecting the already-active field toggles direction,
// selecting a new field starts descending.
func NextSort(current *Sort, field SortField) Sort {
	if current != nil && current.Field == field {
		return Sort{Field: field, Desc: !current.Desc}
	}
	return Sort{Field: field, Desc: true}
}

// Pending keeps only requests in a non-terminal state.
func Pending(reqs []model.Request) []model.Request {
	out := make([]model.Request, 0, len(reqs))
	for _, r := range reqs {
		if !r.State.IsTerminal() {
			out = append(out, r)
		}
	}
	return out
}

// PendingOn keeps only requests currently waiting on the given team.
// Terminal and non-pending states never match.
func PendingOn(reqs []model.Request, team model.Team) []model.Request {
	out := make([]model.Request, 0, len(reqs))
	for _, r := range reqs {
		if t, ok := r.State.PendingTeam(); ok && t == team {
			out = append(out, r)
		}
	}
	return out
}

// MatchText keeps requests whose identifier, description or requester
// contains term, case-insensitively. An empty term matches everything.
func MatchText(reqs []model.Request, term string) []model.Request {
	if term == "" {
		return append([]model.Request(nil), reqs...)
	}
	needle := strings.ToLower(term)
	out := make([]model.Request, 0, len(reqs))
	for _, r := range reqs {
		if strings.Contains(strings.ToLower(r.ID), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle) ||
			strings.Contains(strings.ToLower(r.RequestedBy), needle) {
			out = append(out, r)
		}
	}
	return out
}

// SortBy returns a copy of reqs ordered by the given sort. The sort is
// stable: requests with equal keys keep their relative (insertion) order.
func SortBy(reqs []model.Request, s Sort) []model.Request {
	out := append([]model.Request(nil), reqs...)

	less := func(a, b model.Request) bool {
		switch s.Field {
		case SortByCreated:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortByGoLive:
			// Requests without a go-live time sort before those with one.
			switch {
			case a.GoLiveAt == nil && b.GoLiveAt == nil:
				return false
			case a.GoLiveAt == nil:
				return true
			case b.GoLiveAt == nil:
				return false
			default:
				return a.GoLiveAt.Before(*b.GoLiveAt)
			}
		default:
			// Identifiers order by numeric suffix so REQ_1000 sorts after
			// REQ_999; anything unparseable falls back to lexicographic.
			na, aok := reqid.Parse(a.ID)
			nb, bok := reqid.Parse(b.ID)
			if aok && bok {
				return na < nb
			}
			return a.ID < b.ID
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if s.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Truncate returns the first k requests, or all of them when showAll is set
// or k is not positive.
func Truncate(reqs []model.Request, k int, showAll bool) []model.Request {
	out := append([]model.Request(nil), reqs...)
	if showAll || k <= 0 || len(out) <= k {
		return out
	}
	return out[:k]
}
