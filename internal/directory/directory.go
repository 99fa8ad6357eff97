// Package directory holds the read-only person directory: each student's
// NIM, display name, and recurring weekly class schedule. The directory is a
// constructor-injected collaborator of the scheduler, never ambient state.
package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jeanfide/jadwalin/internal/interval"
	"github.com/jeanfide/jadwalin/internal/models"
	"github.com/jeanfide/jadwalin/internal/utils"
)

type Directory struct {
	people map[string]models.Person
}

// New builds a directory from a list of people. Later entries with a
// duplicate NIM replace earlier ones.
func New(people []models.Person) *Directory {
	d := &Directory{people: make(map[string]models.Person, len(people))}
	for _, p := range people {
		d.people[p.NIM] = p
	}
	return d
}

// Default returns the built-in demo directory used when no directory file is
// configured.
func Default() *Directory {
	return New([]models.Person{
		{
			NIM:  "16725186",
			Name: "Jean Fide Tjahjamuljo",
			ClassSchedule: map[string][]string{
				"Senin":  {"08:00-10:00", "13:00-15:00"},
				"Selasa": {"10:00-12:00"},
				"Rabu":   {"08:00-10:00", "15:00-17:00"},
				"Kamis":  {"13:00-15:00"},
				"Jumat":  {"10:00-12:00"},
			},
		},
		{
			NIM:  "16725193",
			Name: "Farel Ahmad",
			ClassSchedule: map[string][]string{
				"Senin":  {"10:00-12:00"},
				"Selasa": {"08:00-10:00", "13:00-15:00"},
				"Rabu":   {"10:00-12:00"},
				"Kamis":  {"08:00-10:00", "15:00-17:00"},
				"Jumat":  {"13:00-15:00"},
			},
		},
		{
			NIM:  "16725305",
			Name: "Nindya Cettakirana Bintoro",
			ClassSchedule: map[string][]string{
				"Senin":  {"08:00-10:00"},
				"Selasa": {"10:00-12:00", "15:00-17:00"},
				"Rabu":   {"13:00-15:00"},
				"Kamis":  {"08:00-10:00", "13:00-15:00"},
				"Jumat":  {"10:00-12:00"},
			},
		},
	})
}

// LoadFile reads a JSON person directory from disk.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory file: %w", err)
	}

	var people []models.Person
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("failed to parse directory file: %w", err)
	}

	return New(people), nil
}

// Lookup returns the person registered under the given NIM.
func (d *Directory) Lookup(nim string) (models.Person, bool) {
	p, ok := d.people[nim]
	return p, ok
}

// People returns all directory entries sorted by NIM.
func (d *Directory) People() []models.Person {
	people := make([]models.Person, 0, len(d.people))
	for _, p := range d.people {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool { return people[i].NIM < people[j].NIM })
	return people
}

// ClassIntervals returns the busy intervals from the person's weekly class
// schedule for the given date's weekday. An unknown NIM or a weekday with no
// entries yields an empty result, and malformed range strings are skipped
// individually rather than failing the whole lookup.
func (d *Directory) ClassIntervals(nim string, date time.Time) []interval.Interval {
	p, ok := d.people[nim]
	if !ok {
		return nil
	}

	var occupied []interval.Interval
	for _, entry := range p.ClassSchedule[utils.WeekdayLabel(date)] {
		if iv, ok := interval.Parse(entry); ok {
			occupied = append(occupied, iv)
		}
	}
	return occupied
}
