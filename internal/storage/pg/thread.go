package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) CreateThread(thread domain.AddThread) (domain.AddedThread, error) {
	id := "thread-" + s.newId()

	var added domain.AddedThread
	err := s.db.QueryRow(`
	INSERT INTO threads (id, title, body, owner)
	VALUES ($1, $2, $3, $4)
	RETURNING id, title, owner`,
		id, thread.Title, thread.Body, thread.Owner,
	).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyAvailableThread(id string) error {
	var found string
	err := s.db.QueryRow("SELECT id FROM threads WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("THREAD.NOT_FOUND")
		}
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	return nil
}

func (s *Storage) GetThread(id string) (domain.ThreadRecord, error) {
	var thread domain.ThreadRecord
	err := s.db.QueryRow(`
	SELECT threads.id, threads.title, threads.body, threads.date, users.username
	FROM threads
	LEFT JOIN users ON threads.owner = users.id
	WHERE threads.id = $1`, id,
	).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRecord{}, internal_errors.NotFound("THREAD.NOT_FOUND")
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return thread, nil
}
