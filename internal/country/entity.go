// Package country resolves callsigns to DXCC-style entities by longest-prefix
// matching over a table of prefixes and exact-callsign exceptions.
//
// A Database is immutable once built. Updates produce a new Database, usually
// by merging a fresh source over the previous one with Merge, and callers
// publish it by swapping a pointer.
package country

import "time"

// DXCC is the numeric entity identifier. Deleted entities keep their id.
type DXCC uint16

// Entity is a geographic or administrative region.
type Entity struct {
	ID        DXCC       `json:"id" yaml:"id"`
	Prefix    string     `json:"prefix" yaml:"prefix"`
	Name      string     `json:"name" yaml:"name"`
	Continent string     `json:"continent" yaml:"continent"`
	CQZone    *uint8     `json:"cqZone,omitempty" yaml:"cqZone,omitempty"`
	ITUZone   *uint8     `json:"ituZone,omitempty" yaml:"ituZone,omitempty"`
	Lat       *float32   `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lon       *float32   `json:"lon,omitempty" yaml:"lon,omitempty"`
	Timezone  *float32   `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Deleted   bool       `json:"deleted,omitempty" yaml:"deleted,omitempty"`
	ValidFrom *time.Time `json:"validFrom,omitempty" yaml:"validFrom,omitempty"`
	ValidTo   *time.Time `json:"validTo,omitempty" yaml:"validTo,omitempty"`
}

// Prefix maps a literal callsign prefix, or a whole callsign when Exact is
// set, to an entity. Non-nil optional fields override the entity's values.
type Prefix struct {
	Prefix    string     `json:"prefix"`
	Exact     bool       `json:"exact,omitempty"`
	EntityID  DXCC       `json:"entity"`
	Continent *string    `json:"continent,omitempty"`
	CQZone    *uint8     `json:"cqZone,omitempty"`
	ITUZone   *uint8     `json:"ituZone,omitempty"`
	Lat       *float32   `json:"lat,omitempty"`
	Lon       *float32   `json:"lon,omitempty"`
	Timezone  *float32   `json:"timezone,omitempty"`
	ValidFrom *time.Time `json:"validFrom,omitempty"`
	ValidTo   *time.Time `json:"validTo,omitempty"`
}

// ValidAt reports whether at falls inside the record's window. A missing
// bound is unbounded on that side; both bounds are inclusive.
func (p *Prefix) ValidAt(at time.Time) bool {
	return validAt(p.ValidFrom, p.ValidTo, at)
}

// ValidAt reports whether the entity designation applied at the given time.
func (e *Entity) ValidAt(at time.Time) bool {
	return validAt(e.ValidFrom, e.ValidTo, at)
}

func validAt(from, to *time.Time, at time.Time) bool {
	if from != nil && from.After(at) {
		return false
	}
	if to != nil && to.Before(at) {
		return false
	}
	return true
}

// overlay returns override when present, base otherwise.
func overlay[T any](override, base *T) *T {
	if override != nil {
		return override
	}
	return base
}

// applyPrefix builds the lookup result for a matched record. ID, Name and
// Deleted stay with the entity.
func applyPrefix(e Entity, p *Prefix) Entity {
	e.Prefix = p.Prefix
	if p.Continent != nil {
		e.Continent = *p.Continent
	}
	e.CQZone = overlay(p.CQZone, e.CQZone)
	e.ITUZone = overlay(p.ITUZone, e.ITUZone)
	e.Lat = overlay(p.Lat, e.Lat)
	e.Lon = overlay(p.Lon, e.Lon)
	e.Timezone = overlay(p.Timezone, e.Timezone)
	e.ValidFrom = overlay(p.ValidFrom, e.ValidFrom)
	e.ValidTo = overlay(p.ValidTo, e.ValidTo)
	return e
}

// mergeEntity overlays other on base. ID, Name and Deleted always come from
// other; an empty Prefix or Continent and unset optional fields fall back to base.
func mergeEntity(base, other Entity) Entity {
	merged := other
	if merged.Prefix == "" {
		merged.Prefix = base.Prefix
	}
	if merged.Continent == "" {
		merged.Continent = base.Continent
	}
	merged.CQZone = overlay(other.CQZone, base.CQZone)
	merged.ITUZone = overlay(other.ITUZone, base.ITUZone)
	merged.Lat = overlay(other.Lat, base.Lat)
	merged.Lon = overlay(other.Lon, base.Lon)
	merged.Timezone = overlay(other.Timezone, base.Timezone)
	merged.ValidFrom = overlay(other.ValidFrom, base.ValidFrom)
	merged.ValidTo = overlay(other.ValidTo, base.ValidTo)
	return merged
}

// mergePrefix overlays other on a compatible base record.
func mergePrefix(base, other Prefix) Prefix {
	merged := other
	merged.Continent = overlay(other.Continent, base.Continent)
	merged.CQZone = overlay(other.CQZone, base.CQZone)
	merged.ITUZone = overlay(other.ITUZone, base.ITUZone)
	merged.Lat = overlay(other.Lat, base.Lat)
	merged.Lon = overlay(other.Lon, base.Lon)
	merged.Timezone = overlay(other.Timezone, base.Timezone)
	merged.ValidFrom = overlay(other.ValidFrom, base.ValidFrom)
	merged.ValidTo = overlay(other.ValidTo, base.ValidTo)
	return merged
}

// compatible reports whether an incoming record may be merged into an
// existing one: exact records merge with anything, pattern records only with
// pattern records.
func compatible(base, other *Prefix) bool {
	return other.Exact || !base.Exact
}

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
