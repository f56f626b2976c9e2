package task

import (
	"fmt"
	"strings"
	"time"
)

const icsTimeLayout = "20060102T150405Z"

// BuildCalendarICS renders tasks as VTODO entries of one iCalendar document.
// Deadlines are written in UTC; tags become CATEGORIES.
func BuildCalendarICS(tasks []Task, now time.Time) string {
	stamp := now.UTC().Format(icsTimeLayout)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//todolist//Task Export//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}
	for _, t := range tasks {
		status := "NEEDS-ACTION"
		if t.Completed {
			status = "COMPLETED"
		}
		lines = append(lines,
			"BEGIN:VTODO",
			"UID:"+escapeICSText(fmt.Sprintf("task-%s@todolist", t.ID)),
			"DTSTAMP:"+stamp,
			"SUMMARY:"+escapeICSText(t.Name),
			"DUE:"+t.Deadline.UTC().Format(icsTimeLayout),
			"STATUS:"+status,
		)
		if len(t.Tags) > 0 {
			cats := make([]string, len(t.Tags))
			for i, tag := range t.Tags {
				cats[i] = escapeICSText(tag)
			}
			lines = append(lines, "CATEGORIES:"+strings.Join(cats, ","))
		}
		lines = append(lines, "END:VTODO")
	}
	lines = append(lines, "END:VCALENDAR", "")

	return strings.Join(lines, "\r\n")
}

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
