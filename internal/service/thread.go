package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
)

// Read-path placeholders: soft-deleted comments and replies stay in the
// detail output with their content substituted, never omitted.
const (
	deletedCommentContent = "**komentar telah dihapus**"
	deletedReplyContent   = "**balasan telah dihapus**"
)

type ThreadService interface {
	Create(payload map[string]any) (domain.AddedThread, error)
	GetDetail(threadId string) (domain.ThreadDetail, error)
}

type ThreadStorage interface {
	CreateThread(thread domain.AddThread) (domain.AddedThread, error)
	VerifyAvailableThread(id string) error
	GetThread(id string) (domain.ThreadRecord, error)
}

type Thread struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Thread {
	return &Thread{threads, comments, replies}
}

func (s *Thread) Create(payload map[string]any) (domain.AddedThread, error) {
	thread, err := domain.NewAddThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threads.CreateThread(thread)
}

// GetDetail assembles the full read model: thread, its comments in ascending
// date order, and each comment's replies nested in their original order.
func (s *Thread) GetDetail(threadId string) (domain.ThreadDetail, error) {
	thread, err := s.threads.GetThread(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	comments, err := s.comments.GetCommentsByThread(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	replies, err := s.replies.GetRepliesByThread(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	return assembleDetail(thread, comments, replies), nil
}

func assembleDetail(thread domain.ThreadRecord, comments []domain.CommentRecord, replies []domain.ReplyRecord) domain.ThreadDetail {
	repliesByComment := make(map[string][]domain.ReplyDetail)
	for _, r := range replies {
		content := r.Content
		if r.IsDeleted {
			content = deletedReplyContent
		}
		repliesByComment[r.CommentId] = append(repliesByComment[r.CommentId], domain.ReplyDetail{
			Id:       r.Id,
			Content:  content,
			Date:     r.Date,
			Username: r.Username,
		})
	}

	commentDetails := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		content := c.Content
		if c.IsDeleted {
			content = deletedCommentContent
		}
		nested := repliesByComment[c.Id]
		if nested == nil {
			nested = []domain.ReplyDetail{}
		}
		commentDetails = append(commentDetails, domain.CommentDetail{
			Id:       c.Id,
			Date:     c.Date,
			Username: c.Username,
			Content:  content,
			Replies:  nested,
		})
	}

	return domain.ThreadDetail{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: commentDetails,
	}
}
