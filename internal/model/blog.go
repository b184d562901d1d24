package model

import "time"

type Blog struct {
	BlogID      int64     `json:"blogID"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    int64     `json:"authorID"`
	AuthorName  string    `json:"authorName"`
	LikeCount   int64     `json:"likeCount"`
	CreatedDate time.Time `json:"createdDate"`
	Comments    []Comment `json:"comments"`
}

type Comment struct {
	CommentID   int64     `json:"commentID"`
	BlogID      int64     `json:"blogID"`
	UserID      int64     `json:"userID"`
	Username    string    `json:"username"`
	Content     string    `json:"content"`
	CreatedDate time.Time `json:"createdDate"`
	Replies     []Reply   `json:"replies"`
}

type Reply struct {
	ReplyID     int64     `json:"replyID"`
	CommentID   int64     `json:"commentID"`
	UserID      int64     `json:"userID"`
	Content     string    `json:"content"`
	Username    string    `json:"username"`
	CreatedDate time.Time `json:"createdDate"`
}
