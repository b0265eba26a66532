package introspect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/routemcp/internal/testutil"
	"github.com/erraggy/routemcp/route"
	"github.com/erraggy/routemcp/schemadoc"
)

// usersTable is the route table of the two-route users application, in
// registration order.
func usersTable() route.List {
	return route.List{
		{Path: "/users/{user_id}", Methods: []string{"GET"}, Name: "get_user", Summary: "Get a user by ID.", Tags: []string{"users"}},
		{Path: "/users", Methods: []string{"POST"}, Name: "create_user", Summary: "Create a new user.", Tags: []string{"users"}},
	}
}

func mustParse(t *testing.T, src string) *schemadoc.Document {
	t.Helper()
	doc, err := schemadoc.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func newUsersIntrospector(t *testing.T, opts ...Option) *Introspector {
	t.Helper()
	in, err := New(usersTable(), schemadoc.Static(mustParse(t, testutil.UsersSpecJSON)), opts...)
	require.NoError(t, err)
	return in
}
