package search

// Request is the body for POST /search.
type Request struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// Response is the envelope returned by the search service.
type Response struct {
	Result []Record `json:"result"`
}

// Record is one passage-like hit. page_number and similarity_score are
// optional in the envelope; missing fields stay zero-valued.
type Record struct {
	BookID          string  `json:"book_id"`
	Content         string  `json:"content"`
	PageNumber      string  `json:"page_number,omitempty"`
	SimilarityScore float64 `json:"similarity_score,omitempty"`
}
