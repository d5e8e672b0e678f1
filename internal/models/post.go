package models

import "time"

// Post represents a single blog article. Content is stored as markdown;
// ContentHTML carries the sanitized rendered form and is filled in when the
// post is loaded into the store.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	Thumbnail   string    `json:"thumbnail"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Author      Author    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ReadTime    int       `json:"read_time"` // author-set estimate, minutes
	YouTubeURL  string    `json:"youtube_url,omitempty"`
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
	IsFeatured  bool      `json:"is_featured"`
}

// PostPatch holds the fields of a post that can be partially updated.
// Nil fields are left untouched.
type PostPatch struct {
	Title      *string   `json:"title,omitempty"`
	Slug       *string   `json:"slug,omitempty"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Thumbnail  *string   `json:"thumbnail,omitempty"`
	Category   *string   `json:"category,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	ReadTime   *int      `json:"read_time,omitempty"`
	YouTubeURL *string   `json:"youtube_url,omitempty"`
	IsFeatured *bool     `json:"is_featured,omitempty"`
}

// Author describes the writer of a post. Authors are embedded in posts;
// there is no separate author registry.
type Author struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Bio         string       `json:"bio"`
	Avatar      string       `json:"avatar"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
}

// SocialLinks holds an author's optional social media profiles.
type SocialLinks struct {
	YouTube   string `json:"youtube,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Comment is a reader comment on a post. The author is a plain display name,
// not a linked user record; comments live inside their post.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
}
