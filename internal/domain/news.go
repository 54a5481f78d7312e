package domain

// NewsItem is one business headline from the news provider.
type NewsItem struct {
	ID          string
	Title       string
	Summary     string
	URL         string
	PublishedAt string
	Source      string
}
