package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) CreateReply(reply domain.AddReply) (domain.AddedReply, error) {
	id := "reply-" + s.newId()
	createdTs := time.Now().UTC().Round(time.Microsecond)

	var added domain.AddedReply
	err := s.db.QueryRow(`
	INSERT INTO comment_replies (id, content, owner, comment_id, thread_id, date, is_delete)
	VALUES ($1, $2, $3, $4, $5, $6, false)
	RETURNING id, content, owner`,
		id, reply.Content, reply.Owner, reply.CommentId, reply.ThreadId, createdTs,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}

// VerifyAvailableReply treats soft-deleted replies as unavailable.
func (s *Storage) VerifyAvailableReply(id string) error {
	var found string
	err := s.db.QueryRow("SELECT id FROM comment_replies WHERE id = $1 AND is_delete = false", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("REPLY.NOT_FOUND")
		}
		return fmt.Errorf("failed to verify reply: %w", err)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(id, owner string) error {
	var storedOwner string
	err := s.db.QueryRow("SELECT owner FROM comment_replies WHERE id = $1", id).Scan(&storedOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("REPLY.NOT_FOUND")
		}
		return fmt.Errorf("failed to verify reply owner: %w", err)
	}
	if storedOwner != owner {
		return internal_errors.Forbidden("REPLY.NOT_AUTHORIZED")
	}
	return nil
}

func (s *Storage) GetRepliesByThread(threadId string) ([]domain.ReplyRecord, error) {
	rows, err := s.db.Query(`
	SELECT r.id, r.comment_id, u.username, r.date, r.content, r.is_delete
	FROM comment_replies r
	LEFT JOIN users u ON r.owner = u.id
	WHERE r.thread_id = $1
	ORDER BY r.date ASC`, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to get replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.ReplyRecord
	for rows.Next() {
		var r domain.ReplyRecord
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Username, &r.Date, &r.Content, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}
	return replies, nil
}

func (s *Storage) SoftDeleteReply(id string) error {
	result, err := s.db.Exec("UPDATE comment_replies SET is_delete = true WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to soft delete reply: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("REPLY.NOT_FOUND")
	}
	return nil
}
