package domain

// Stats counts meeting records by status.
type Stats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
	Archived  int `json:"archived"`
}

// CountStatuses tallies statuses. Unknown values count toward Total only.
func CountStatuses(statuses []Status) Stats {
	stats := Stats{Total: len(statuses)}
	for _, s := range statuses {
		switch s {
		case StatusDraft:
			stats.Draft++
		case StatusPublished:
			stats.Published++
		case StatusArchived:
			stats.Archived++
		}
	}
	return stats
}
