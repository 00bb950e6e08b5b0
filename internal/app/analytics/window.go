package analytics

import (
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// RoleScope decides which roles of an alumnus kept by the date window reach
// the aggregators.
type RoleScope string

const (
	// RoleScopeAlumni keeps the full role list of every included alumnus
	RoleScopeAlumni RoleScope = "alumni"
	// RoleScopeWindow keeps only the roles that satisfy the window
	RoleScopeWindow RoleScope = "window"
)

// ParseRoleScope returns the scope for s, defaulting to RoleScopeAlumni
func ParseRoleScope(s string) RoleScope {
	if RoleScope(s) == RoleScopeWindow {
		return RoleScopeWindow
	}
	return RoleScopeAlumni
}

// IsEmpty reports whether the window keeps everything
func (w DateWindow) IsEmpty() bool {
	return !w.CurrentOnly && w.Start == nil && w.End == nil
}

// RoleMatches reports whether a single role satisfies the window. Ongoing
// roles end at now.
func (w DateWindow) RoleMatches(r *models.Role, now time.Time) bool {
	switch {
	case w.CurrentOnly:
		return r.EndDate == nil
	case w.Start != nil && w.End != nil:
		return !r.StartDate.Before(*w.Start) && !r.EffectiveEnd(now).After(*w.End)
	case w.Start != nil:
		return !r.StartDate.Before(*w.Start)
	case w.End != nil:
		return !r.EffectiveEnd(now).After(*w.End)
	default:
		return true
	}
}

// FilterWindow keeps the alumni owning at least one role inside the window.
// The input slice and its alumni are never modified; with RoleScopeWindow the
// kept alumni are shallow copies carrying a trimmed role slice.
func FilterWindow(alumni []models.Alumni, w DateWindow, now time.Time, scope RoleScope) []models.Alumni {
	if w.IsEmpty() {
		return alumni
	}

	kept := make([]models.Alumni, 0, len(alumni))
	for i := range alumni {
		a := &alumni[i]

		var inWindow []models.Role
		matched := false
		for j := range a.Roles {
			if !w.RoleMatches(&a.Roles[j], now) {
				continue
			}
			matched = true
			if scope != RoleScopeWindow {
				break
			}
			inWindow = append(inWindow, a.Roles[j])
		}
		if !matched {
			continue
		}

		if scope == RoleScopeWindow {
			trimmed := *a
			trimmed.Roles = inWindow
			kept = append(kept, trimmed)
			continue
		}
		kept = append(kept, *a)
	}
	return kept
}
