package models

// Person is a read-only directory entry: a student identified by NIM with a
// recurring weekly class schedule. ClassSchedule is keyed by the canonical
// Indonesian weekday labels; each value is an ordered list of
// "HH:MM-HH:MM" range strings.
type Person struct {
	NIM           string              `json:"nim"`
	Name          string              `json:"name"`
	ClassSchedule map[string][]string `json:"class_schedule"`
}
