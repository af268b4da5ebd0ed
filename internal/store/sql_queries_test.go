// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildGetNoteTextsQuery_SQLContainsParts(t *testing.T) {
	userID := int64(42)

	query, args, err := buildGetNoteTextsQuery(userID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, userID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from notes")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by created_at desc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildGetNoteTextsQuery_ProjectsTextOnly(t *testing.T) {
	query, _, err := buildGetNoteTextsQuery(1)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// the assistant payload must never see timestamps or ids
	selectClause := q[:strings.Index(q, "from")]
	require.Contains(t, selectClause, "text")
	require.NotContains(t, selectClause, "created_at")
	require.NotContains(t, selectClause, "updated_at")
	require.NotContains(t, selectClause, "id")
}
