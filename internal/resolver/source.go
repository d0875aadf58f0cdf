package resolver

import (
	"context"
	"io"
	"time"

	"github.com/tphakala/hamkit/internal/clublog"
	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/countryfile"
	"github.com/tphakala/hamkit/internal/datastore"
	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/source"
)

// Source names used as metric labels and archive tags.
const (
	SourceCountryFile = "countryfile"
	SourceClubLog     = "clublog"
	SourceMerged      = "merged"
)

// Source is a remote country document and the parser that reads it.
// Sources are merged in order, later ones correcting earlier ones.
type Source struct {
	Name  string
	URL   string
	Parse func(r io.Reader) (*country.Database, error)
}

// CountryFileSource returns a cty.csv source.
func CountryFileSource(url string, log logger.Logger, now func() time.Time) Source {
	p := &countryfile.Parser{Logger: log, Now: now}
	return Source{Name: SourceCountryFile, URL: url, Parse: p.Parse}
}

// ClubLogSource returns a Club Log cty.xml source. url must already carry
// the api key, see clublog.URL.
func ClubLogSource(url string, log logger.Logger, now func() time.Time) Source {
	p := &clublog.Parser{Logger: log, Now: now}
	return Source{Name: SourceClubLog, URL: url, Parse: p.Parse}
}

// Fetcher downloads source documents.
type Fetcher interface {
	FetchIfModified(ctx context.Context, rawURL, lastModified string) (*source.Response, error)
}

// SnapshotStore persists the published database between runs.
type SnapshotStore interface {
	Save(db *country.Database) error
	Load() (*country.Database, error)
}

// SnapshotArchive keeps a history of published databases.
type SnapshotArchive interface {
	Save(ctx context.Context, source string, db *country.Database) (*datastore.SnapshotRecord, error)
	Latest(ctx context.Context, source string) (*country.Database, *datastore.SnapshotRecord, error)
	Prune(ctx context.Context, keep int) (int64, error)
}

// sourceState remembers the last successful download of a source so that a
// 304 answer can reuse the parsed document.
type sourceState struct {
	lastModified string
	db           *country.Database
	fetchedAt    time.Time
	err          error
}

// SourceStatus reports the last download of a source.
type SourceStatus struct {
	Name         string    `json:"name" yaml:"name"`
	LastModified string    `json:"lastModified,omitempty" yaml:"last_modified,omitempty"`
	FetchedAt    time.Time `json:"fetchedAt,omitzero" yaml:"fetched_at,omitempty"`
	LastError    string    `json:"lastError,omitempty" yaml:"last_error,omitempty"`
}
