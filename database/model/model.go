package model

// Post is a single feed entry. Posts are immutable once created; there is no
// edit operation. Timestamp is an RFC 3339 UTC string and the feed sort key.
type Post struct {
	Id        string `json:"id" gorm:"primaryKey"`
	Content   string `json:"content" gorm:"not null"`
	Timestamp string `json:"timestamp" gorm:"not null"`
}

// User is the admin identity. Exactly one row is expected, though the schema
// permits more. Password holds a bcrypt hash, never the plaintext.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"password"`
}

// Setting is a site-wide key/value configuration entry. Recognized keys are
// site_name, site_tagline and posts_public.
type Setting struct {
	Key   string `json:"key" form:"key" gorm:"primaryKey"`
	Value string `json:"value" form:"value"`
}
