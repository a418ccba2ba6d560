package service

import (
	"sync"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

// callLog records the order of storage calls so tests can assert the
// parent-before-child verification sequence.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) sequence() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	log *callLog

	createThreadFunc          func(thread domain.AddThread) (domain.AddedThread, error)
	verifyAvailableThreadFunc func(id string) error
	getThreadFunc             func(id string) (domain.ThreadRecord, error)
}

func (m *MockThreadStorage) CreateThread(thread domain.AddThread) (domain.AddedThread, error) {
	m.log.add("CreateThread")
	if m.createThreadFunc != nil {
		return m.createThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadStorage) VerifyAvailableThread(id string) error {
	m.log.add("VerifyAvailableThread")
	if m.verifyAvailableThreadFunc != nil {
		return m.verifyAvailableThreadFunc(id)
	}
	return nil
}

func (m *MockThreadStorage) GetThread(id string) (domain.ThreadRecord, error) {
	m.log.add("GetThread")
	if m.getThreadFunc != nil {
		return m.getThreadFunc(id)
	}
	return domain.ThreadRecord{Id: id}, nil
}

// MockCommentStorage mocks the CommentStorage interface.
type MockCommentStorage struct {
	log *callLog

	createCommentFunc          func(comment domain.AddComment) (domain.AddedComment, error)
	verifyAvailableCommentFunc func(id string) error
	verifyCommentOwnerFunc     func(id, owner string) error
	getCommentsByThreadFunc    func(threadId string) ([]domain.CommentRecord, error)
	softDeleteCommentFunc      func(id string) error
}

func (m *MockCommentStorage) CreateComment(comment domain.AddComment) (domain.AddedComment, error) {
	m.log.add("CreateComment")
	if m.createCommentFunc != nil {
		return m.createCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentStorage) VerifyAvailableComment(id string) error {
	m.log.add("VerifyAvailableComment")
	if m.verifyAvailableCommentFunc != nil {
		return m.verifyAvailableCommentFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentOwner(id, owner string) error {
	m.log.add("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentsByThread(threadId string) ([]domain.CommentRecord, error) {
	m.log.add("GetCommentsByThread")
	if m.getCommentsByThreadFunc != nil {
		return m.getCommentsByThreadFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentStorage) SoftDeleteComment(id string) error {
	m.log.add("SoftDeleteComment")
	if m.softDeleteCommentFunc != nil {
		return m.softDeleteCommentFunc(id)
	}
	return nil
}

// MockReplyStorage mocks the ReplyStorage interface.
type MockReplyStorage struct {
	log *callLog

	createReplyFunc          func(reply domain.AddReply) (domain.AddedReply, error)
	verifyAvailableReplyFunc func(id string) error
	verifyReplyOwnerFunc     func(id, owner string) error
	getRepliesByThreadFunc   func(threadId string) ([]domain.ReplyRecord, error)
	softDeleteReplyFunc      func(id string) error
}

func (m *MockReplyStorage) CreateReply(reply domain.AddReply) (domain.AddedReply, error) {
	m.log.add("CreateReply")
	if m.createReplyFunc != nil {
		return m.createReplyFunc(reply)
	}
	return domain.AddedReply{Id: "reply-123", Content: reply.Content, Owner: reply.Owner}, nil
}

func (m *MockReplyStorage) VerifyAvailableReply(id string) error {
	m.log.add("VerifyAvailableReply")
	if m.verifyAvailableReplyFunc != nil {
		return m.verifyAvailableReplyFunc(id)
	}
	return nil
}

func (m *MockReplyStorage) VerifyReplyOwner(id, owner string) error {
	m.log.add("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockReplyStorage) GetRepliesByThread(threadId string) ([]domain.ReplyRecord, error) {
	m.log.add("GetRepliesByThread")
	if m.getRepliesByThreadFunc != nil {
		return m.getRepliesByThreadFunc(threadId)
	}
	return nil, nil
}

func (m *MockReplyStorage) SoftDeleteReply(id string) error {
	m.log.add("SoftDeleteReply")
	if m.softDeleteReplyFunc != nil {
		return m.softDeleteReplyFunc(id)
	}
	return nil
}
