package domain

// Word is a catalog entry shared between all users
type Word struct {
	ID       int
	English  string
	Russian  string
	IsCustom bool
}

// WordPair is an English-Russian pair without catalog identity,
// used for seeding and display
type WordPair struct {
	English string
	Russian string
}
