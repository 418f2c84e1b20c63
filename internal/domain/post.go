package domain

import "time"

// Post is an anonymous text post. Posts are append-only: nothing updates a
// post after creation except the comment counter.
type Post struct {
	PostID       string    `json:"post_id" gorm:"column:post_id;primaryKey"`
	UserID       string    `json:"user_id" gorm:"column:user_id;index;not null"`
	Content      string    `json:"post_content" gorm:"column:post_content;not null"`
	CommentCount int       `json:"comment_count" gorm:"column:comment_count;default:0"`
	CreatedAt    time.Time `json:"post_created_at" gorm:"column:post_created_at"`
}

func (Post) TableName() string { return "posts" }

// PostWithAuthor is a Post joined with the author's email for the feed.
type PostWithAuthor struct {
	PostID       string    `json:"post_id" gorm:"column:post_id"`
	UserID       string    `json:"user_id" gorm:"column:user_id"`
	Content      string    `json:"post_content" gorm:"column:post_content"`
	CommentCount int       `json:"comment_count" gorm:"column:comment_count"`
	CreatedAt    time.Time `json:"post_created_at" gorm:"column:post_created_at"`
	Email        string    `json:"email" gorm:"column:email"`
}

type CreatePostRequest struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}
