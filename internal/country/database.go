package country

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// Database is an immutable set of entities and prefix records.
type Database struct {
	Timestamp time.Time           `json:"timestamp"`
	Entities  map[DXCC]Entity     `json:"entities"`
	Prefixes  map[string][]Prefix `json:"prefixes"`
}

// Empty returns a database with no entities or prefixes and a zero timestamp.
func Empty() *Database {
	return &Database{
		Entities: map[DXCC]Entity{},
		Prefixes: map[string][]Prefix{},
	}
}

// Build groups prefix records by literal prefix, keeping their relative
// order, and indexes entities by id. A repeated id keeps the last entity.
func Build(timestamp time.Time, entities []Entity, prefixes []Prefix) *Database {
	db := &Database{
		Timestamp: timestamp,
		Entities:  make(map[DXCC]Entity, len(entities)),
		Prefixes:  make(map[string][]Prefix, len(prefixes)),
	}

	for i := range entities {
		db.Entities[entities[i].ID] = entities[i]
	}
	for i := range prefixes {
		db.Prefixes[prefixes[i].Prefix] = append(db.Prefixes[prefixes[i].Prefix], prefixes[i])
	}

	return db
}

// Lookup resolves a callsign at the given time. An exact record for the whole
// callsign wins; otherwise the longest pattern prefix with a record valid at
// that time is used. Within a group the first valid record wins. A record
// pointing at an unknown entity counts as no match.
func (db *Database) Lookup(callsign string, at time.Time) (Entity, bool) {
	if db == nil || callsign == "" {
		return Entity{}, false
	}

	if p := firstValid(db.Prefixes[callsign], true, at); p != nil {
		return db.resolve(p)
	}

	for i := len(callsign); i > 0; i-- {
		if p := firstValid(db.Prefixes[callsign[:i]], false, at); p != nil {
			return db.resolve(p)
		}
	}

	return Entity{}, false
}

// LookupNow resolves a callsign at the current time.
func (db *Database) LookupNow(callsign string) (Entity, bool) {
	return db.Lookup(callsign, time.Now())
}

// LookupByID returns the entity with the given id.
func (db *Database) LookupByID(id DXCC) (Entity, bool) {
	if db == nil {
		return Entity{}, false
	}
	e, ok := db.Entities[id]
	return e, ok
}

func firstValid(group []Prefix, exact bool, at time.Time) *Prefix {
	for i := range group {
		if group[i].Exact == exact && group[i].ValidAt(at) {
			return &group[i]
		}
	}
	return nil
}

func (db *Database) resolve(p *Prefix) (Entity, bool) {
	e, ok := db.Entities[p.EntityID]
	if !ok {
		return Entity{}, false
	}
	return applyPrefix(e, p), true
}

// Merge returns a new database with other layered over db. Entities present
// in both are overlaid field by field; entities only in db are kept. Each
// record of other is overlaid on the first compatible record of the same
// group in db, or kept as is. Groups only in db are kept. The timestamp is
// other's unless other has none.
func (db *Database) Merge(other *Database) *Database {
	if db == nil {
		db = Empty()
	}
	if other == nil {
		other = Empty()
	}

	merged := &Database{
		Timestamp: other.Timestamp,
		Entities:  make(map[DXCC]Entity, max(len(db.Entities), len(other.Entities))),
		Prefixes:  make(map[string][]Prefix, max(len(db.Prefixes), len(other.Prefixes))),
	}
	if merged.Timestamp.IsZero() {
		merged.Timestamp = db.Timestamp
	}

	maps.Copy(merged.Entities, db.Entities)
	for id, e := range other.Entities {
		if base, ok := db.Entities[id]; ok {
			merged.Entities[id] = mergeEntity(base, e)
		} else {
			merged.Entities[id] = e
		}
	}

	for key, group := range db.Prefixes {
		if _, ok := other.Prefixes[key]; !ok {
			merged.Prefixes[key] = slices.Clone(group)
		}
	}
	for key, group := range other.Prefixes {
		base := db.Prefixes[key]
		out := make([]Prefix, 0, len(group))
		for i := range group {
			out = append(out, mergeInto(base, group[i]))
		}
		merged.Prefixes[key] = out
	}

	return merged
}

func mergeInto(base []Prefix, other Prefix) Prefix {
	for i := range base {
		if compatible(&base[i], &other) {
			return mergePrefix(base[i], other)
		}
	}
	return other
}

// Stats summarizes a database for logs and status output.
type Stats struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Entities  int       `json:"entities" yaml:"entities"`
	Deleted   int       `json:"deleted" yaml:"deleted"`
	Groups    int       `json:"prefixGroups" yaml:"prefix_groups"`
	Records   int       `json:"prefixRecords" yaml:"prefix_records"`
	Exact     int       `json:"exactRecords" yaml:"exact_records"`
}

// Stats counts entities and prefix records.
func (db *Database) Stats() Stats {
	if db == nil {
		return Stats{}
	}
	s := Stats{
		Timestamp: db.Timestamp,
		Entities:  len(db.Entities),
		Groups:    len(db.Prefixes),
	}
	for _, e := range db.Entities {
		if e.Deleted {
			s.Deleted++
		}
	}
	for _, group := range db.Prefixes {
		s.Records += len(group)
		for i := range group {
			if group[i].Exact {
				s.Exact++
			}
		}
	}
	return s
}

// Age is the time elapsed between the database timestamp and now.
func (db *Database) Age(now time.Time) time.Duration {
	if db == nil || db.Timestamp.IsZero() {
		return 0
	}
	return now.Sub(db.Timestamp)
}

// NormalizeCallsign upper-cases and trims a callsign for lookup.
func NormalizeCallsign(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
