package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
)

type CommentService interface {
	Create(payload map[string]any) (domain.AddedComment, error)
	Delete(payload map[string]any) error
}

type CommentStorage interface {
	CreateComment(comment domain.AddComment) (domain.AddedComment, error)
	VerifyAvailableComment(id string) error
	VerifyCommentOwner(id, owner string) error
	GetCommentsByThread(threadId string) ([]domain.CommentRecord, error)
	SoftDeleteComment(id string) error
}

type Comment struct {
	comments CommentStorage
	threads  ThreadStorage
}

func NewComment(comments CommentStorage, threads ThreadStorage) *Comment {
	return &Comment{comments, threads}
}

func (s *Comment) Create(payload map[string]any) (domain.AddedComment, error) {
	comment, err := domain.NewAddComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threads.VerifyAvailableThread(comment.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}
	return s.comments.CreateComment(comment)
}

// Delete soft-deletes a comment. Existence is verified parent-first before
// ownership, so a missing thread or comment reports not-found rather than an
// authorization failure.
func (s *Comment) Delete(payload map[string]any) error {
	del, err := domain.NewDeleteComment(payload)
	if err != nil {
		return err
	}
	if err := s.threads.VerifyAvailableThread(del.ThreadId); err != nil {
		return err
	}
	if err := s.comments.VerifyAvailableComment(del.CommentId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(del.CommentId, del.Owner); err != nil {
		return err
	}
	return s.comments.SoftDeleteComment(del.CommentId)
}
