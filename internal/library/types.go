package library

import "strings"

// User mirrors the payload returned by /api/users/me/.
type User struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

// DisplayName returns the user's full name, falling back to the username.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// HasRole reports whether the user carries the given role label.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RegisterProfile is the new-user payload for /api/register/.
type RegisterProfile struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Username  string `json:"username"   validate:"required,min=3"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
}

// TokenPair mirrors the /api/token/ response.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Book describes a catalogued book. Bookshelf is required; category, series
// and volume number are optional references. The denormalized *_name fields
// are read-only conveniences filled in by the backend.
type Book struct {
	ID            int64  `json:"id"`
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Author        string `json:"author"`
	Bookshelf     int64  `json:"bookshelf"`
	BookshelfName string `json:"bookshelf_name"`
	Category      *int64 `json:"category"`
	CategoryName  string `json:"category_name"`
	Series        *int64 `json:"series"`
	SeriesTitle   string `json:"series_title"`
	VolumeNumber  *int   `json:"volume_number"`
	User          int64  `json:"user"`

	// GoogleData holds externally sourced metadata. It is only present on
	// detail responses and absence is an expected state, not an error.
	GoogleData *VolumeInfo `json:"google_data,omitempty"`
}

// DisplayTitle prefers the catalogued title, then the lookup metadata.
func (b Book) DisplayTitle() string {
	if strings.TrimSpace(b.Title) != "" {
		return b.Title
	}
	if b.GoogleData != nil && strings.TrimSpace(b.GoogleData.Title) != "" {
		return b.GoogleData.Title
	}
	return b.ISBN
}

// PrimaryAuthor prefers the catalogued author, then the first lookup author.
func (b Book) PrimaryAuthor() string {
	if strings.TrimSpace(b.Author) != "" {
		return b.Author
	}
	if b.GoogleData != nil && len(b.GoogleData.Authors) > 0 {
		return b.GoogleData.Authors[0]
	}
	return ""
}

// VolumeInfo is the metadata sub-record sourced from the backend's ISBN
// lookup provider (the Google Books volumeInfo shape).
type VolumeInfo struct {
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle"`
	Authors       []string    `json:"authors"`
	Publisher     string      `json:"publisher"`
	PublishedDate string      `json:"publishedDate"`
	Description   string      `json:"description"`
	PageCount     int         `json:"pageCount"`
	Categories    []string    `json:"categories"`
	ImageLinks    *ImageLinks `json:"imageLinks,omitempty"`
}

// ImageLinks carries cover image URLs from the lookup provider.
type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// Bookshelf is a named container owning a set of books.
type Bookshelf struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	User int64  `json:"user"`
}

// Category is an optional classification tag applied to books.
// Deleting one nulls the reference on affected books server-side.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	User int64  `json:"user"`
}

// Series is an optional ordered grouping of books.
type Series struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	User  int64  `json:"user"`
}
