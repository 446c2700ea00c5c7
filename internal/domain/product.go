package domain

// DownloadVariant is one installable packaging of a product, reconstructed
// from the numbered downloadlinkN/downloadnameN/downloadsizeN keys of the
// remote record.
type DownloadVariant struct {
	Link string `json:"downloadlink"`
	Name string `json:"downloadname"`
	Size int64  `json:"downloadsize"`
}

// Product is one normalized catalog entry.
type Product struct {
	Details      string            `json:"details"`
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	TypeID       int64             `json:"typeid"`
	TypeName     string            `json:"typename"`
	PersonID     string            `json:"personid"`
	Created      string            `json:"created"`
	Changed      string            `json:"changed"`
	Score        float64           `json:"score"`     // 0.0 .. 5.0
	Downloads    string            `json:"downloads"` // kept as text, "0" when absent
	Description  string            `json:"description"`
	PreviewPics  []string          `json:"previewpics"`
	DownloadList []DownloadVariant `json:"downloaddetails"`
}

// CatalogPage is one decoded response from the content listing endpoint.
type CatalogPage struct {
	Status       string    `json:"status"`
	StatusCode   int64     `json:"statuscode"`
	Message      string    `json:"message"`
	TotalItems   int64     `json:"totalitems"`
	ItemsPerPage int64     `json:"itemsperpage"`
	Products     []Product `json:"data"`
}
