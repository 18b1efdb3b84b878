package search

// Section is one offering of a course: who teaches it, the semester
// date range label, and the meeting day code.
type Section struct {
	Prof string `json:"prof"`
	Sem  string `json:"sem"`
	Day  string `json:"day"`
}

// Book is a textbook tied to a course listing. URL points at an open
// access copy when the catalog lookup found one.
type Book struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
	URL    string  `json:"url,omitempty"`
}

// Course is one catalog listing as handed over by the course data
// source. At least one of Code or Title must be set for the course to
// be indexable.
type Course struct {
	Title    string    `json:"title"`
	Dept     string    `json:"dept"`
	Code     string    `json:"code"`
	Sections []Section `json:"sections"`
	Books    []Book    `json:"books"`
}

// Document is the flat stored shape of a course. It is created once at
// index time and only ever replaced whole by re-indexing the same id.
type Document struct {
	Title    string    `json:"title"`
	Dept     string    `json:"dept"`
	Code     string    `json:"code"`
	Sections []Section `json:"sections"`
	Books    []Book    `json:"books"`
}

// ToDocument flattens a course into its stored form. Section order is
// kept and books serialize to an empty list rather than null.
func ToDocument(c Course) Document {
	sections := c.Sections
	if sections == nil {
		sections = []Section{}
	}
	books := c.Books
	if books == nil {
		books = []Book{}
	}
	return Document{
		Title:    c.Title,
		Dept:     c.Dept,
		Code:     c.Code,
		Sections: sections,
		Books:    books,
	}
}
