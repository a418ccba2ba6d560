package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
)

type ReplyService interface {
	Create(payload map[string]any) (domain.AddedReply, error)
	Delete(payload map[string]any) error
}

type ReplyStorage interface {
	CreateReply(reply domain.AddReply) (domain.AddedReply, error)
	VerifyAvailableReply(id string) error
	VerifyReplyOwner(id, owner string) error
	GetRepliesByThread(threadId string) ([]domain.ReplyRecord, error)
	SoftDeleteReply(id string) error
}

type Reply struct {
	replies  ReplyStorage
	comments CommentStorage
	threads  ThreadStorage
}

func NewReply(replies ReplyStorage, comments CommentStorage, threads ThreadStorage) *Reply {
	return &Reply{replies, comments, threads}
}

func (s *Reply) Create(payload map[string]any) (domain.AddedReply, error) {
	reply, err := domain.NewAddReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.threads.VerifyAvailableThread(reply.ThreadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.comments.VerifyAvailableComment(reply.CommentId); err != nil {
		return domain.AddedReply{}, err
	}
	return s.replies.CreateReply(reply)
}

// Delete soft-deletes a reply, verifying thread, comment and reply existence
// in that order before the ownership check.
func (s *Reply) Delete(payload map[string]any) error {
	del, err := domain.NewDeleteReply(payload)
	if err != nil {
		return err
	}
	if err := s.threads.VerifyAvailableThread(del.ThreadId); err != nil {
		return err
	}
	if err := s.comments.VerifyAvailableComment(del.CommentId); err != nil {
		return err
	}
	if err := s.replies.VerifyAvailableReply(del.ReplyId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyOwner(del.ReplyId, del.Owner); err != nil {
		return err
	}
	return s.replies.SoftDeleteReply(del.ReplyId)
}
