package domain

import "time"

// AddComment is the validated payload of the add-comment use case.
type AddComment struct {
	ThreadId string
	Content  string
	Owner    string
}

func NewAddComment(payload map[string]any) (AddComment, error) {
	fields, err := requiredStrings("ADD_COMMENT", payload, "content", "threadId", "owner")
	if err != nil {
		return AddComment{}, err
	}
	return AddComment{
		ThreadId: fields["threadId"],
		Content:  fields["content"],
		Owner:    fields["owner"],
	}, nil
}

// AddedComment is what a successful comment creation returns to the client.
type AddedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// DeleteComment is the validated payload of the delete-comment use case.
type DeleteComment struct {
	CommentId string
	ThreadId  string
	Owner     string
}

func NewDeleteComment(payload map[string]any) (DeleteComment, error) {
	fields, err := requiredStrings("DELETE_COMMENT", payload, "commentId", "threadId", "owner")
	if err != nil {
		return DeleteComment{}, err
	}
	return DeleteComment{
		CommentId: fields["commentId"],
		ThreadId:  fields["threadId"],
		Owner:     fields["owner"],
	}, nil
}

// CommentRecord is a comment row joined with its owner's username, as read
// from storage. IsDeleted rows stay in the result; redaction happens in the
// detail assembly.
type CommentRecord struct {
	Id        string
	Username  string
	Date      time.Time
	Content   string
	IsDeleted bool
}

// CommentDetail is a comment as emitted in the thread detail, with its
// replies nested in ascending date order.
type CommentDetail struct {
	Id       string        `json:"id"`
	Date     time.Time     `json:"date"`
	Username string        `json:"username"`
	Content  string        `json:"content"`
	Replies  []ReplyDetail `json:"replies"`
}
