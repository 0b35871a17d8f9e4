// Package entity defines the request forms and response entities of the web layer.
package entity

// SiteSettings is the resolved site configuration returned by GET /settings.
// posts_public is parsed from its stored text form at this boundary.
type SiteSettings struct {
	SiteName    string `json:"site_name"`
	SiteTagline string `json:"site_tagline"`
	PostsPublic bool   `json:"posts_public"`
}

// UpdateSettingsForm carries a settings update. Pointer fields distinguish
// "provided" from "omitted": omitted fields are left unchanged. PostsPublic is
// typed any so a non-boolean value can be rejected explicitly instead of
// failing at bind time.
type UpdateSettingsForm struct {
	SiteName    *string `json:"site_name"`
	SiteTagline *string `json:"site_tagline"`
	PostsPublic any     `json:"posts_public"`
}

// LoginForm carries the credentials for POST /auth.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UpdateProfileForm carries a credential change for PUT /auth/profile.
type UpdateProfileForm struct {
	CurrentUsername string `json:"currentUsername" form:"currentUsername"`
	NewUsername     string `json:"newUsername" form:"newUsername"`
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// CreatePostForm carries the body of POST /posts.
type CreatePostForm struct {
	Content string `json:"content" form:"content"`
}

// DeletePostForm carries the body of DELETE /posts.
type DeletePostForm struct {
	Id string `json:"id" form:"id"`
}

// Stats is the response of GET /stats.
type Stats struct {
	PostCount int64 `json:"postCount"`
	UserCount int64 `json:"userCount"`
}

// Count is the response of GET /posts/count.
type Count struct {
	Count int64 `json:"count"`
}
