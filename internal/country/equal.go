package country

import (
	"slices"
	"time"
)

// Equal reports whether two databases hold the same timestamp, entities and
// prefix groups, with groups compared in order. Times compare by instant.
func (db *Database) Equal(other *Database) bool {
	if db == nil || other == nil {
		return db == other
	}
	if !db.Timestamp.Equal(other.Timestamp) {
		return false
	}
	if len(db.Entities) != len(other.Entities) || len(db.Prefixes) != len(other.Prefixes) {
		return false
	}
	for id, e := range db.Entities {
		o, ok := other.Entities[id]
		if !ok || !e.Equal(&o) {
			return false
		}
	}
	for key, group := range db.Prefixes {
		o, ok := other.Prefixes[key]
		if !ok || !slices.EqualFunc(group, o, func(a, b Prefix) bool { return a.Equal(&b) }) {
			return false
		}
	}
	return true
}

// Equal compares every field of two entities.
func (e *Entity) Equal(o *Entity) bool {
	return e.ID == o.ID &&
		e.Prefix == o.Prefix &&
		e.Name == o.Name &&
		e.Continent == o.Continent &&
		e.Deleted == o.Deleted &&
		optEqual(e.CQZone, o.CQZone) &&
		optEqual(e.ITUZone, o.ITUZone) &&
		optEqual(e.Lat, o.Lat) &&
		optEqual(e.Lon, o.Lon) &&
		optEqual(e.Timezone, o.Timezone) &&
		timeEqual(e.ValidFrom, o.ValidFrom) &&
		timeEqual(e.ValidTo, o.ValidTo)
}

// Equal compares every field of two prefix records.
func (p *Prefix) Equal(o *Prefix) bool {
	return p.Prefix == o.Prefix &&
		p.Exact == o.Exact &&
		p.EntityID == o.EntityID &&
		optEqual(p.Continent, o.Continent) &&
		optEqual(p.CQZone, o.CQZone) &&
		optEqual(p.ITUZone, o.ITUZone) &&
		optEqual(p.Lat, o.Lat) &&
		optEqual(p.Lon, o.Lon) &&
		optEqual(p.Timezone, o.Timezone) &&
		timeEqual(p.ValidFrom, o.ValidFrom) &&
		timeEqual(p.ValidTo, o.ValidTo)
}

func optEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
