package handler

import (
	"context"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

type MockThreadService struct {
	MockCreate    func(payload map[string]any) (domain.AddedThread, error)
	MockGetDetail func(threadId string) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(payload map[string]any) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) GetDetail(threadId string) (domain.ThreadDetail, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(threadId)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	MockCreate func(payload map[string]any) (domain.AddedComment, error)
	MockDelete func(payload map[string]any) error
}

func (m *MockCommentService) Create(payload map[string]any) (domain.AddedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(payload map[string]any) error {
	if m.MockDelete != nil {
		return m.MockDelete(payload)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(payload map[string]any) (domain.AddedReply, error)
	MockDelete func(payload map[string]any) error
}

func (m *MockReplyService) Create(payload map[string]any) (domain.AddedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(payload map[string]any) error {
	if m.MockDelete != nil {
		return m.MockDelete(payload)
	}
	return nil
}

type MockPinger struct {
	MockPing func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}
