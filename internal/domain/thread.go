package domain

import "time"

// AddThread is the validated payload of the add-thread use case.
type AddThread struct {
	Title string
	Body  string
	Owner string
}

// NewAddThread validates a raw payload and builds the immutable value the use
// case hands to storage.
func NewAddThread(payload map[string]any) (AddThread, error) {
	fields, err := requiredStrings("ADD_THREAD", payload, "title", "body", "owner")
	if err != nil {
		return AddThread{}, err
	}
	return AddThread{
		Title: fields["title"],
		Body:  fields["body"],
		Owner: fields["owner"],
	}, nil
}

// AddedThread is what a successful thread creation returns to the client.
type AddedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// ThreadRecord is a thread row joined with its owner's username.
type ThreadRecord struct {
	Id       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

// ThreadDetail is the full read model: the thread plus its comments with
// replies nested under them.
type ThreadDetail struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}
