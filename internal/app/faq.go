package app

// FAQEntry is a question with its answer.
type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// FAQViewModel holds the entries shown by the FAQ screen in display order.
// A view model is replaced as a whole and never mutated after it has been handed to a screen.
type FAQViewModel struct {
	Entries []FAQEntry
}
