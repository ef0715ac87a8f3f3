package header

// Model is the text a Header displays. Empty fields leave the matching
// element uncreated, or blank if it already exists.
type Model struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Button   string `json:"button,omitempty"`
}

// Samples returns models of varying length for demos and tests.
func Samples() []Model {
	return []Model{
		{
			Title:    "Inbox",
			Subtitle: "3 unread",
			Button:   "Edit",
		},
		{
			Title:    "Quarterly planning",
			Subtitle: "Shared with the infrastructure team",
			Button:   "Share",
		},
		{
			Title:    "Incident review: elevated error rates on the storage tier after the regional failover",
			Subtitle: "Draft, last edited 10 minutes ago",
			Button:   "Publish",
		},
		{
			Title:  "Settings",
			Button: "Done",
		},
		{
			Title:    "Tiếng Việt và 日本語のタイトル",
			Subtitle: "Wide and combining characters",
			Button:   "OK",
		},
	}
}
