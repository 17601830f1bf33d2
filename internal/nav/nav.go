// Package nav builds the dashboard navigation and filters it by role.
package nav

import (
	"github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
)

// Item is a single navigation entry. AdminExcluded marks entries that the
// admin role must not see (user management and anything equally sensitive).
type Item struct {
	Title         string
	Path          string
	Icon          string
	AdminExcluded bool
}

// moderatorAllowed is the explicit allow-list for the moderator role, keyed
// by item title. Moderators see these entries and nothing else, regardless
// of any other flag on the item.
var moderatorAllowed = map[string]struct{}{
	"Dashboard": {},
	"Blogs":     {},
	"FAQs":      {},
	"Contacts":  {},
}

// DefaultItems returns the full dashboard navigation before role filtering.
func DefaultItems() []Item {
	return []Item{
		{Title: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Title: "Products", Path: "/dashboard/products", Icon: "package"},
		{Title: "Blogs", Path: "/dashboard/blogs", Icon: "pen"},
		{Title: "FAQs", Path: "/dashboard/faqs", Icon: "help"},
		{Title: "Resources", Path: "/dashboard/resources", Icon: "folder"},
		{Title: "Contacts", Path: "/dashboard/contacts", Icon: "mail"},
		{Title: "Users", Path: "/dashboard/users", Icon: "users", AdminExcluded: true},
	}
}

// Filter returns the navigation entries visible to role. Unknown or empty
// roles get nothing; the function fails closed rather than guessing.
func Filter(items []Item, role auth.Role) []Item {
	switch role {
	case auth.RoleSuperAdmin:
		out := make([]Item, len(items))
		copy(out, items)
		return out
	case auth.RoleAdmin:
		out := make([]Item, 0, len(items))
		for _, it := range items {
			if it.AdminExcluded {
				continue
			}
			out = append(out, it)
		}
		return out
	case auth.RoleModerator:
		out := make([]Item, 0, len(moderatorAllowed))
		for _, it := range items {
			if _, ok := moderatorAllowed[it.Title]; ok {
				out = append(out, it)
			}
		}
		return out
	default:
		return []Item{}
	}
}
