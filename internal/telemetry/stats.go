package telemetry

// Counts tallies events per kind.
type Counts struct {
	Added    int `json:"added"`
	Modified int `json:"modified"`
	Removed  int `json:"removed"`
}

func (c Counts) Total() int {
	return c.Added + c.Modified + c.Removed
}

// CountByKind tallies the given events per kind. Unknown kinds are ignored.
func CountByKind(events []Event) Counts {
	var c Counts
	for _, event := range events {
		switch event.Kind {
		case EventTaskAdded:
			c.Added++
		case EventTaskModified:
			c.Modified++
		case EventTaskRemoved:
			c.Removed++
		}
	}
	return c
}
