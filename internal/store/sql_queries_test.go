// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildSelectActivitiesQuery_OrdersByPosition(t *testing.T) {
	query, args, err := buildSelectActivitiesQuery(dollar)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, strings.ToLower(query), "from activities")
	assert.Contains(t, strings.ToLower(query), "order by position")
}

func Test_buildSelectCapacityQuery(t *testing.T) {
	tests := []struct {
		name       string
		builder    sq.StatementBuilderType
		forUpdate  bool
		wantQuery  string
		wantSuffix bool
	}{
		{
			name:       "postgres locks the row",
			builder:    dollar,
			forUpdate:  true,
			wantQuery:  "SELECT max_participants FROM activities WHERE name = $1 FOR UPDATE",
			wantSuffix: true,
		},
		{
			name:      "sqlite plain select",
			builder:   question,
			wantQuery: "SELECT max_participants FROM activities WHERE name = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectCapacityQuery(tt.builder, "Chess Club", tt.forUpdate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{"Chess Club"}, args)
			assert.Equal(t, tt.wantSuffix, strings.HasSuffix(query, "FOR UPDATE"))
		})
	}
}

func Test_buildSelectEnrollmentQuery_ArgOrder(t *testing.T) {
	query, args, err := buildSelectEnrollmentQuery(dollar, "Chess Club", "a@mergington.edu")
	require.NoError(t, err)

	// the email placeholder sits in the column list, before the WHERE clause
	assert.Equal(t, []any{"a@mergington.edu", "Chess Club"}, args)
	assert.Contains(t, query, "email = $1")
	assert.Contains(t, query, "activity_name = $2")
}

func Test_buildInsertParticipantQuery(t *testing.T) {
	query, args, err := buildInsertParticipantQuery(question, "Chess Club", "a@mergington.edu", 3)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO participants (activity_name,email,position) VALUES (?,?,?)", query)
	assert.Equal(t, []any{"Chess Club", "a@mergington.edu", 3}, args)
}

func Test_buildDeleteParticipantQuery(t *testing.T) {
	query, args, err := buildDeleteParticipantQuery(dollar, "Chess Club", "a@mergington.edu")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM participants WHERE activity_name = $1 AND email = $2", query)
	assert.Equal(t, []any{"Chess Club", "a@mergington.edu"}, args)
}
