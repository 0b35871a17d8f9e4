package service

// CanViewPosts decides whether a caller may read the feed, given the current
// posts_public setting and the caller's admin claim. A private feed is visible
// to admins only; a public feed is visible to everyone. The single boolean
// setting toggles the entire feed, there is no per-post visibility.
func CanViewPosts(postsPublic, isAdmin bool) bool {
	return postsPublic || isAdmin
}
