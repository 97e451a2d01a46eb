package query

// Filters narrows order and bid listings
type Filters struct {
	Collection string `json:"collection,omitempty"`
}
