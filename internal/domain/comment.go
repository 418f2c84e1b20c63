package domain

import "time"

// Comment belongs to exactly one Post. UserID is nullable: the app allows
// anonymous comments.
type Comment struct {
	CommentID string    `json:"id" gorm:"column:id;primaryKey"`
	PostID    string    `json:"postId" gorm:"column:post_id;index;not null"`
	UserID    *string   `json:"userId" gorm:"column:user_id"`
	Content   string    `json:"content" gorm:"column:content;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Comment) TableName() string { return "comments" }

type CreateCommentRequest struct {
	PostID  string  `json:"postId"`
	UserID  *string `json:"userId"`
	Content string  `json:"comment"`
}
