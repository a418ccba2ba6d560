package domain

import "time"

// AddReply is the validated payload of the add-reply use case. ThreadId is
// stored denormalized on the reply row for query convenience.
type AddReply struct {
	CommentId string
	ThreadId  string
	Content   string
	Owner     string
}

func NewAddReply(payload map[string]any) (AddReply, error) {
	fields, err := requiredStrings("ADD_REPLY", payload, "content", "commentId", "threadId", "owner")
	if err != nil {
		return AddReply{}, err
	}
	return AddReply{
		CommentId: fields["commentId"],
		ThreadId:  fields["threadId"],
		Content:   fields["content"],
		Owner:     fields["owner"],
	}, nil
}

// AddedReply is what a successful reply creation returns to the client.
type AddedReply struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// DeleteReply is the validated payload of the delete-reply use case.
type DeleteReply struct {
	ReplyId   string
	CommentId string
	ThreadId  string
	Owner     string
}

func NewDeleteReply(payload map[string]any) (DeleteReply, error) {
	fields, err := requiredStrings("DELETE_REPLY", payload, "replyId", "commentId", "threadId", "owner")
	if err != nil {
		return DeleteReply{}, err
	}
	return DeleteReply{
		ReplyId:   fields["replyId"],
		CommentId: fields["commentId"],
		ThreadId:  fields["threadId"],
		Owner:     fields["owner"],
	}, nil
}

// ReplyRecord is a reply row joined with its owner's username. CommentId is
// used to group replies under their comment and is stripped from the emitted
// detail.
type ReplyRecord struct {
	Id        string
	CommentId string
	Username  string
	Date      time.Time
	Content   string
	IsDeleted bool
}

// ReplyDetail is a reply as emitted nested under its comment.
type ReplyDetail struct {
	Id       string    `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}
