package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) CreateComment(comment domain.AddComment) (domain.AddedComment, error) {
	id := "comment-" + s.newId()
	createdTs := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway

	var added domain.AddedComment
	err := s.db.QueryRow(`
	INSERT INTO comments (id, content, owner, thread_id, date, is_delete)
	VALUES ($1, $2, $3, $4, $5, false)
	RETURNING id, content, owner`,
		id, comment.Content, comment.Owner, comment.ThreadId, createdTs,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

// VerifyAvailableComment treats soft-deleted comments as unavailable.
func (s *Storage) VerifyAvailableComment(id string) error {
	var found string
	err := s.db.QueryRow("SELECT id FROM comments WHERE id = $1 AND is_delete = false", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("COMMENT.NOT_FOUND")
		}
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(id, owner string) error {
	var storedOwner string
	err := s.db.QueryRow("SELECT owner FROM comments WHERE id = $1", id).Scan(&storedOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("COMMENT.NOT_FOUND")
		}
		return fmt.Errorf("failed to verify comment owner: %w", err)
	}
	if storedOwner != owner {
		return internal_errors.Forbidden("COMMENT.NOT_AUTHORIZED")
	}
	return nil
}

func (s *Storage) GetCommentsByThread(threadId string) ([]domain.CommentRecord, error) {
	rows, err := s.db.Query(`
	SELECT comments.id, users.username, comments.date, comments.content, comments.is_delete
	FROM comments
	LEFT JOIN users ON comments.owner = users.id
	WHERE comments.thread_id = $1
	ORDER BY comments.date ASC`, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentRecord
	for rows.Next() {
		var c domain.CommentRecord
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) SoftDeleteComment(id string) error {
	result, err := s.db.Exec("UPDATE comments SET is_delete = true WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to soft delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("COMMENT.NOT_FOUND")
	}
	return nil
}
