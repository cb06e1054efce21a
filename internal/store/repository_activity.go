// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/models"
)

// maxTxAttempts bounds how often a transaction is replayed after a
// retryable database error.
const maxTxAttempts = 3

// activityRepository is the SQL implementation of [ActivityRepository].
//
// Enrollment runs in a transaction: on PostgreSQL the activity row is locked
// with SELECT ... FOR UPDATE before capacity is checked, so concurrent
// signups cannot overfill an activity.
type activityRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewActivityRepository constructs a SQL backed [ActivityRepository].
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *activityRepository) List(ctx context.Context) (models.Catalog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActivitiesQuery(r.db.builder())
	if err != nil {
		return models.Catalog{}, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.List").Msg("error selecting activities")
		return models.Catalog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	catalog := models.NewCatalog()
	for rows.Next() {
		var name string
		a := models.Activity{Participants: []string{}}
		if err = rows.Scan(&name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			return models.Catalog{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		catalog.Add(name, a)
	}
	if err = rows.Err(); err != nil {
		return models.Catalog{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.attachParticipants(ctx, &catalog); err != nil {
		log.Err(err).Str("func", "*activityRepository.List").Msg("error selecting participants")
		return models.Catalog{}, err
	}

	return catalog, nil
}

func (r *activityRepository) attachParticipants(ctx context.Context, catalog *models.Catalog) error {
	query, args, err := buildSelectParticipantsQuery(r.db.builder())
	if err != nil {
		return err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var activity, email string
		if err = rows.Scan(&activity, &email); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		a, ok := catalog.Activities[activity]
		if !ok {
			continue
		}
		a.Participants = append(a.Participants, email)
		catalog.Activities[activity] = a
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func (r *activityRepository) AddParticipant(ctx context.Context, activity, email string) error {
	return r.inTx(ctx, "*activityRepository.AddParticipant", func(tx *sql.Tx) error {
		capacity, err := r.selectCapacity(ctx, tx, activity)
		if err != nil {
			return err
		}

		count, lastPosition, enrolled, err := r.selectEnrollment(ctx, tx, activity, email)
		if err != nil {
			return err
		}
		if enrolled {
			return ErrAlreadySignedUp
		}
		if count >= capacity {
			return ErrActivityFull
		}

		query, args, err := buildInsertParticipantQuery(r.db.builder(), activity, email, lastPosition+1)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadySignedUp
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}

func (r *activityRepository) RemoveParticipant(ctx context.Context, activity, email string) error {
	return r.inTx(ctx, "*activityRepository.RemoveParticipant", func(tx *sql.Tx) error {
		if _, err := r.selectCapacity(ctx, tx, activity); err != nil {
			return err
		}

		query, args, err := buildDeleteParticipantQuery(r.db.builder(), activity, email)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrNotSignedUp
		}

		return nil
	})
}

func (r *activityRepository) selectCapacity(ctx context.Context, tx *sql.Tx, activity string) (int, error) {
	query, args, err := buildSelectCapacityQuery(r.db.builder(), activity, r.db.lockRows())
	if err != nil {
		return 0, err
	}

	var capacity int
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrActivityNotFound
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return capacity, nil
}

func (r *activityRepository) selectEnrollment(ctx context.Context, tx *sql.Tx, activity, email string) (count, lastPosition int, enrolled bool, err error) {
	query, args, err := buildSelectEnrollmentQuery(r.db.builder(), activity, email)
	if err != nil {
		return 0, 0, false, err
	}

	var matches int
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&count, &lastPosition, &matches); err != nil {
		return 0, 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, lastPosition, matches > 0, nil
}

// inTx runs fn in a transaction, committing when fn succeeds. Domain errors
// roll back and are returned as is; retryable database errors replay the
// whole transaction.
func (r *activityRepository) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = r.runTx(ctx, fn)
		if err == nil || r.db.errorClassificator == nil || r.db.errorClassificator.Classify(err) != Retryable {
			break
		}
		log.Warn().Err(err).Str("func", funcName).Int("attempt", attempt).Msg("retrying transaction")
	}

	if err != nil && !isDomainError(err) {
		log.Err(err).Str("func", funcName).Msg("transaction failed")
	}
	return err
}

func (r *activityRepository) runTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrActivityNotFound) ||
		errors.Is(err, ErrAlreadySignedUp) ||
		errors.Is(err, ErrActivityFull) ||
		errors.Is(err, ErrNotSignedUp)
}
