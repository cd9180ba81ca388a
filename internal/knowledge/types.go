package knowledge

import "time"

// Entry is a single curated question/answer record. Entries are created
// and edited through the store or the importer; the matching engine only
// ever reads a snapshot of them.
type Entry struct {
	ID        string    `json:"id" yaml:"id,omitempty"`
	Question  string    `json:"question" yaml:"question"`
	Answer    string    `json:"answer" yaml:"answer"`
	Category  string    `json:"category,omitempty" yaml:"category,omitempty"`
	ImageURL  string    `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Keywords  []string  `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}
