package domain

// Classification groups vehicles for browsing (Sport, SUV, Truck, ...).
type Classification struct {
	ID   int    `json:"classification_id"`
	Name string `json:"classification_name"`
}

// Vehicle is a single inventory item. ClassificationName is populated by
// queries that join the classification table; it is empty otherwise.
type Vehicle struct {
	ID                 int     `json:"inv_id"`
	ClassificationID   int     `json:"classification_id"`
	Make               string  `json:"inv_make"`
	Model              string  `json:"inv_model"`
	Description        string  `json:"inv_description"`
	Image              string  `json:"inv_image"`
	Thumbnail          string  `json:"inv_thumbnail"`
	Price              float64 `json:"inv_price"`
	Year               int     `json:"inv_year"`
	Miles              int     `json:"inv_miles"`
	Color              string  `json:"inv_color"`
	ClassificationName string  `json:"classification_name,omitempty"`
}
