package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
)

func titles(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestFilterSuperAdminSeesEverything(t *testing.T) {
	items := DefaultItems()
	got := Filter(items, auth.RoleSuperAdmin)
	assert.Equal(t, titles(items), titles(got))
}

func TestFilterAdminExcludesFlaggedItems(t *testing.T) {
	got := Filter(DefaultItems(), auth.RoleAdmin)
	assert.NotContains(t, titles(got), "Users")
	assert.Contains(t, titles(got), "Products")
}

func TestFilterModeratorAllowListWinsOverFlags(t *testing.T) {
	// An allow-listed entry stays visible to moderators even when it is
	// excluded for admins.
	items := []Item{
		{Title: "Dashboard", Path: "/dashboard"},
		{Title: "Contacts", Path: "/dashboard/contacts", AdminExcluded: true},
		{Title: "Users", Path: "/dashboard/users", AdminExcluded: true},
	}
	got := Filter(items, auth.RoleModerator)
	assert.Equal(t, []string{"Dashboard", "Contacts"}, titles(got))
}

func TestFilterModeratorIgnoresInputOrder(t *testing.T) {
	items := DefaultItems()
	reversed := make([]Item, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		reversed = append(reversed, items[i])
	}

	want := []string{"Dashboard", "Blogs", "FAQs", "Contacts"}
	assert.ElementsMatch(t, want, titles(Filter(items, auth.RoleModerator)))
	assert.ElementsMatch(t, want, titles(Filter(reversed, auth.RoleModerator)))
}

func TestFilterFailsClosed(t *testing.T) {
	for _, role := range []auth.Role{"", "viewer", "SUPER_ADMIN"} {
		assert.Empty(t, Filter(DefaultItems(), role), "role %q", role)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := DefaultItems()
	before := titles(items)
	Filter(items, auth.RoleAdmin)
	Filter(items, auth.RoleModerator)
	assert.Equal(t, before, titles(items))
}
