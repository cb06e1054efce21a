// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	activitiesTable   = "activities"
	participantsTable = "participants"
)

func buildSelectActivitiesQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select("name", "description", "schedule", "max_participants").
		From(activitiesTable).
		OrderBy("position", "name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select activities: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectParticipantsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select("activity_name", "email").
		From(participantsTable).
		OrderBy("activity_name", "position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select participants: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectCapacityQuery reads the capacity of one activity, taking a row
// lock when forUpdate is set.
func buildSelectCapacityQuery(b sq.StatementBuilderType, activity string, forUpdate bool) (string, []any, error) {
	qb := b.
		Select("max_participants").
		From(activitiesTable).
		Where(sq.Eq{"name": activity})
	if forUpdate {
		qb = qb.Suffix("FOR UPDATE")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select capacity: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectEnrollmentQuery returns the participant count of an activity,
// the highest position in use and whether email is among the participants.
func buildSelectEnrollmentQuery(b sq.StatementBuilderType, activity, email string) (string, []any, error) {
	query, args, err := b.
		Select(
			"COUNT(*)",
			"COALESCE(MAX(position), 0)",
		).
		Column(sq.Expr("COALESCE(SUM(CASE WHEN email = ? THEN 1 ELSE 0 END), 0)", email)).
		From(participantsTable).
		Where(sq.Eq{"activity_name": activity}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select enrollment: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertParticipantQuery(b sq.StatementBuilderType, activity, email string, position int) (string, []any, error) {
	query, args, err := b.
		Insert(participantsTable).
		Columns("activity_name", "email", "position").
		Values(activity, email, position).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: insert participant: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteParticipantQuery(b sq.StatementBuilderType, activity, email string) (string, []any, error) {
	query, args, err := b.
		Delete(participantsTable).
		Where(sq.Eq{"activity_name": activity, "email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: delete participant: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
