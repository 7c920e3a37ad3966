package cache

import (
	"encoding/json"
	"fmt"

	"bookshelf/models"
)

const ACTIVITY_KEY = "activity"

// ActivityJournal remembers the most recent mutating requests.
type ActivityJournal struct {
	cacher RequestCacher
}

func NewActivityJournal(cacher RequestCacher) *ActivityJournal {
	return &ActivityJournal{cacher: cacher}
}

func (journal *ActivityJournal) Record(activity models.Activity) error {
	entry, err := json.Marshal(activity)
	if err != nil {
		return err
	}
	return journal.cacher.Write(ACTIVITY_KEY, entry)
}

// Recent returns the remembered activities, newest first.
func (journal *ActivityJournal) Recent() ([]models.Activity, error) {
	entries, err := journal.cacher.Read(ACTIVITY_KEY)
	if err != nil {
		return nil, fmt.Errorf("read activity: %w", err)
	}

	activities := make([]models.Activity, 0, len(entries))
	for _, entry := range entries {
		var activity models.Activity
		if err := json.Unmarshal([]byte(entry), &activity); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		activities = append(activities, activity)
	}
	return activities, nil
}
