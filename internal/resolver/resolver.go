// Package resolver turns the exercise catalog into the ordered, paginated
// list a user sees. Everything here is pure: the same catalog, profile and
// query always produce the same page.
package resolver

import (
	"strings"

	"fitguide/fitness-app/internal/domain"
)

// DefaultPageSize is the number of exercises per page.
const DefaultPageSize = 8

// homeQuery is the literal search term that matches home-friendly exercises.
const homeQuery = "home"

// Query narrows the resolved list.
type Query struct {
	// Category keeps a single category; empty or "All" keeps everything.
	Category domain.Category
	// Muscle is the free-text search box. It matches a muscle tag substring,
	// an exact difficulty, or the word "home".
	Muscle string
	// Page is 1-based. Values below 1 are treated as 1.
	Page     int
	PageSize int
}

// Page is one slice of the resolved list.
type Page struct {
	Items      []domain.Exercise `json:"items"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
}

// Resolve runs the full pipeline and returns the requested page.
func Resolve(catalog []domain.Exercise, profile *domain.UserProfile, q Query) Page {
	return Paginate(Eligible(catalog, profile, q), q.Page, q.PageSize)
}

// Eligible returns the filtered and ordered list before pagination.
// Stage order matters: substitution re-applies the location filter, and the
// category filter runs after the BMI sort.
func Eligible(catalog []domain.Exercise, profile *domain.UserProfile, q Query) []domain.Exercise {
	pool := filterLocation(catalog, profile.Location)
	pool = substituteEquipment(catalog, pool, profile)
	pool = matchSearch(pool, q.Muscle)
	pool = prioritize(pool, profile.BMICategory())
	return filterCategory(pool, q.Category)
}

func filterLocation(exercises []domain.Exercise, loc domain.Location) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if ex.AvailableAt(loc) {
			out = append(out, ex)
		}
	}
	return out
}

// substituteEquipment swaps machine exercises the user cannot do for their
// designated replacement. At the gym it walks the full catalog, not the
// location-filtered pool, and allows a single substitution hop. At home no
// machine is available so equipment-bound exercises are simply dropped.
func substituteEquipment(catalog, pool []domain.Exercise, profile *domain.UserProfile) []domain.Exercise {
	if !strings.EqualFold(string(profile.Location), string(domain.LocationGym)) {
		return withoutEquipment(pool)
	}

	out := make([]domain.Exercise, 0, len(catalog))
	for _, ex := range catalog {
		available := !ex.NeedsEquipment() || profile.HasEquipment(ex.EquipmentRequired)
		switch {
		case available && !ex.IsReplacement:
			out = append(out, ex)
		case !available:
			if rep, ok := findReplacement(catalog, ex.ID); ok {
				out = append(out, rep)
			}
		}
	}
	return filterLocation(out, profile.Location)
}

func findReplacement(catalog []domain.Exercise, id string) (domain.Exercise, bool) {
	for _, ex := range catalog {
		if ex.ReplacesID == id {
			return ex, true
		}
	}
	return domain.Exercise{}, false
}

func withoutEquipment(pool []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(pool))
	for _, ex := range pool {
		if !ex.NeedsEquipment() {
			out = append(out, ex)
		}
	}
	return out
}

// matchSearch keeps exercises where any muscle contains the query, the
// difficulty equals it, or the query is "home" and the exercise works at home.
func matchSearch(pool []domain.Exercise, query string) []domain.Exercise {
	if query == "" {
		return pool
	}
	search := strings.ToLower(query)
	out := make([]domain.Exercise, 0, len(pool))
	for _, ex := range pool {
		if matchesMuscle(ex.Muscles, search) ||
			strings.ToLower(string(ex.Difficulty)) == search ||
			(search == homeQuery && ex.AvailableAt(domain.LocationHome)) {
			out = append(out, ex)
		}
	}
	return out
}

func matchesMuscle(muscles []string, search string) bool {
	for _, m := range muscles {
		if strings.Contains(strings.ToLower(m), search) {
			return true
		}
	}
	return false
}

// prioritize is a stable partition: the favoured category moves to the
// front and both halves keep their incoming order.
func prioritize(pool []domain.Exercise, bmi domain.BMICategory) []domain.Exercise {
	var first domain.Category
	switch bmi {
	case domain.BMIUnderweight:
		first = domain.CategoryStrength
	case domain.BMIOverweight:
		first = domain.CategoryCardio
	default:
		return pool
	}

	out := make([]domain.Exercise, 0, len(pool))
	for _, ex := range pool {
		if ex.Category == first {
			out = append(out, ex)
		}
	}
	for _, ex := range pool {
		if ex.Category != first {
			out = append(out, ex)
		}
	}
	return out
}

func filterCategory(pool []domain.Exercise, category domain.Category) []domain.Exercise {
	if category == "" || category == domain.CategoryAll {
		return pool
	}
	out := make([]domain.Exercise, 0, len(pool))
	for _, ex := range pool {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}

// Paginate slices items into pages. A page past the end is empty, not an error.
func Paginate(items []domain.Exercise, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	p := Page{
		Items:      []domain.Exercise{},
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
		Page:       page,
		PageSize:   pageSize,
	}
	start := (page - 1) * pageSize
	if start >= total {
		return p
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	p.Items = items[start:end]
	return p
}
