package domain

// SortOrder is a catalog listing order. Its value is the remote sortmode
// token used in catalog query strings.
type SortOrder string

func (s SortOrder) Token() string {
	return string(s)
}

const (
	SortLatest       SortOrder = "update"
	SortRating       SortOrder = "high"
	SortCreator      SortOrder = "new"
	SortDownloads    SortOrder = "down"
	SortAlphabetical SortOrder = "alpha"
)

var SortOrders = []SortOrder{
	SortLatest,
	SortRating,
	SortCreator,
	SortDownloads,
	SortAlphabetical,
}

func (s SortOrder) Label() string {
	switch s {
	case SortLatest:
		return "Latest"
	case SortRating:
		return "Rating"
	case SortCreator:
		return "Creator"
	case SortDownloads:
		return "Downloads"
	case SortAlphabetical:
		return "Alphabetical"
	default:
		return "Unknown"
	}
}
