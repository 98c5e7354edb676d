package models

import "time"

// FollowingDB represents a directed follow edge in the database
type FollowingDB struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`                     // The follower
	FollowingUserID int64     `json:"following_user_id" db:"following_user_id"` // The followee
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// UserSummary is the projection of a user returned by follow listings
type UserSummary struct {
	ID       int64   `json:"id" db:"id"`
	Username string  `json:"username" db:"username"`
	Name     string  `json:"name" db:"name"`
	Avatar   *string `json:"avatar" db:"avatar"`
}

// PageRequest is a 1-based page number with a page size
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the requested page.
// Callers check the page against Pages first, so the product stays below the row count.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Pages returns the number of pages total rows fill. An empty listing still has one page.
func (p PageRequest) Pages(total int) int {
	if total <= 0 || p.PageSize <= 0 {
		return 1
	}
	return (total-1)/p.PageSize + 1
}

// UserSummaryPage is one page of a follow listing together with the total row count
type UserSummaryPage struct {
	Count   int
	Results []UserSummary
}
