package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddReply(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		got, err := NewAddReply(map[string]any{
			"content":   "sebuah balasan",
			"commentId": "comment-123",
			"threadId":  "thread-123",
			"owner":     "user-123",
		})
		require.NoError(t, err)
		assert.Equal(t, AddReply{
			CommentId: "comment-123",
			ThreadId:  "thread-123",
			Content:   "sebuah balasan",
			Owner:     "user-123",
		}, got)
	})

	t.Run("missing property", func(t *testing.T) {
		_, err := NewAddReply(map[string]any{"commentId": "comment-123", "threadId": "thread-123", "owner": "user-123"})
		assertInvariant(t, err, "ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("wrong data type", func(t *testing.T) {
		_, err := NewAddReply(map[string]any{
			"content": []any{"x"}, "commentId": "comment-123", "threadId": "thread-123", "owner": "user-123",
		})
		assertInvariant(t, err, "ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})
}

func TestNewDeleteReply(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		got, err := NewDeleteReply(map[string]any{
			"replyId":   "reply-123",
			"commentId": "comment-123",
			"threadId":  "thread-123",
			"owner":     "user-123",
		})
		require.NoError(t, err)
		assert.Equal(t, DeleteReply{
			ReplyId:   "reply-123",
			CommentId: "comment-123",
			ThreadId:  "thread-123",
			Owner:     "user-123",
		}, got)
	})

	t.Run("missing property", func(t *testing.T) {
		_, err := NewDeleteReply(map[string]any{"replyId": "reply-123", "commentId": "comment-123", "owner": "user-123"})
		assertInvariant(t, err, "DELETE_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("wrong data type", func(t *testing.T) {
		_, err := NewDeleteReply(map[string]any{
			"replyId": "reply-123", "commentId": "comment-123", "threadId": "thread-123", "owner": float64(7),
		})
		assertInvariant(t, err, "DELETE_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})
}
