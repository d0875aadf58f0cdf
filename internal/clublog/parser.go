// Package clublog parses the Club Log country file (cty.xml), optionally
// gzip-compressed, into a country.Database. Entities become country
// entities, exceptions become exact-callsign records and prefixes become
// pattern records.
package clublog

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

// DefaultURL is the Club Log country file endpoint. An API key is required.
const DefaultURL = "https://cdn.clublog.org/cty.php"

var gzipMagic = []byte{0x1f, 0x8b}

// URL returns the download URL for the given API key.
func URL(base, apiKey string) (string, error) {
	if base == "" {
		base = DefaultURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", errors.New(err).
			Component("clublog").
			Category(errors.CategoryConfiguration).
			Build()
	}
	q := u.Query()
	q.Set("api", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type xmlEntity struct {
	ADIF    string `xml:"adif"`
	Name    string `xml:"name"`
	Prefix  string `xml:"prefix"`
	Deleted string `xml:"deleted"`
	CQZ     string `xml:"cqz"`
	ITUZ    string `xml:"ituz"`
	Cont    string `xml:"cont"`
	Long    string `xml:"long"`
	Lat     string `xml:"lat"`
	Start   string `xml:"start"`
	End     string `xml:"end"`
}

// xmlRecord is shared by <exception> and <prefix> elements.
type xmlRecord struct {
	Call  string `xml:"call"`
	ADIF  string `xml:"adif"`
	CQZ   string `xml:"cqz"`
	ITUZ  string `xml:"ituz"`
	Cont  string `xml:"cont"`
	Long  string `xml:"long"`
	Lat   string `xml:"lat"`
	Start string `xml:"start"`
	End   string `xml:"end"`
}

// Parser reads cty.xml documents. Now stamps documents without a date
// attribute and defaults to time.Now.
type Parser struct {
	Logger logger.Logger
	Now    func() time.Time
}

// Parse reads a cty.xml document with the package logger.
func Parse(r io.Reader) (*country.Database, error) {
	return (&Parser{}).Parse(r)
}

// Parse decodes the document. Entries missing a required field are skipped;
// a document without a <clublog> root or with broken XML is an error.
func (p *Parser) Parse(r io.Reader) (*country.Database, error) {
	log := p.Logger
	if log == nil {
		log = GetLogger()
	}

	src, err := maybeGunzip(r)
	if err != nil {
		return nil, err
	}

	var (
		entities  []country.Entity
		prefixes  []country.Prefix
		timestamp time.Time
		sawRoot   bool
		skipped   int
	)

	dec := xml.NewDecoder(src)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(err, "decode")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "clublog":
			sawRoot = true
			for _, attr := range start.Attr {
				if attr.Name.Local == "date" {
					timestamp = parseTime(attr.Value)
				}
			}
		case "entity":
			var x xmlEntity
			if err := dec.DecodeElement(&x, &start); err != nil {
				return nil, parseError(err, "entity")
			}
			if e, ok := x.toEntity(); ok {
				entities = append(entities, e)
			} else {
				skipped++
			}
		case "exception", "prefix":
			var x xmlRecord
			if err := dec.DecodeElement(&x, &start); err != nil {
				return nil, parseError(err, start.Name.Local)
			}
			if rec, ok := x.toPrefix(start.Name.Local == "exception"); ok {
				prefixes = append(prefixes, rec)
			} else {
				skipped++
			}
		case "invalid_operations", "zone_exceptions":
			if err := dec.Skip(); err != nil {
				return nil, parseError(err, start.Name.Local)
			}
		}
	}

	if !sawRoot {
		return nil, errors.Newf("clublog root element missing").
			Component("clublog").
			Category(errors.CategoryFileParsing).
			Build()
	}

	if timestamp.IsZero() {
		if p.Now != nil {
			timestamp = p.Now()
		} else {
			timestamp = time.Now()
		}
	}

	db := country.Build(timestamp, entities, prefixes)
	if skipped > 0 {
		log.Warn("skipped incomplete club log entries", logger.Int("count", skipped))
	}
	log.Debug("club log file parsed",
		logger.Int("entities", len(db.Entities)),
		logger.Int("prefix_groups", len(db.Prefixes)),
		logger.Time("timestamp", timestamp))

	return db, nil
}

func maybeGunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, parseError(err, "read")
	}
	if !bytes.Equal(head, gzipMagic) {
		return br, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, parseError(err, "gunzip")
	}
	return zr, nil
}

func parseError(err error, stage string) error {
	return errors.New(err).
		Component("clublog").
		Category(errors.CategoryFileParsing).
		Context("stage", stage).
		Build()
}

func (x *xmlEntity) toEntity() (country.Entity, bool) {
	id, ok := parseID(x.ADIF)
	if !ok || x.Prefix == "" || x.Name == "" || x.Cont == "" {
		return country.Entity{}, false
	}
	return country.Entity{
		ID:        id,
		Prefix:    strings.TrimSpace(x.Prefix),
		Name:      strings.TrimSpace(x.Name),
		Continent: strings.TrimSpace(x.Cont),
		CQZone:    parseUint8(x.CQZ),
		ITUZone:   parseUint8(x.ITUZ),
		Lat:       parseFloat32(x.Lat),
		Lon:       parseFloat32(x.Long),
		Deleted:   strings.EqualFold(strings.TrimSpace(x.Deleted), "true"),
		ValidFrom: parseOptionalTime(x.Start),
		ValidTo:   parseOptionalTime(x.End),
	}, true
}

func (x *xmlRecord) toPrefix(exact bool) (country.Prefix, bool) {
	id, ok := parseID(x.ADIF)
	call := strings.TrimSpace(x.Call)
	if !ok || call == "" {
		return country.Prefix{}, false
	}
	rec := country.Prefix{
		Prefix:    call,
		Exact:     exact,
		EntityID:  id,
		CQZone:    parseUint8(x.CQZ),
		ITUZone:   parseUint8(x.ITUZ),
		Lat:       parseFloat32(x.Lat),
		Lon:       parseFloat32(x.Long),
		ValidFrom: parseOptionalTime(x.Start),
		ValidTo:   parseOptionalTime(x.End),
	}
	if cont := strings.TrimSpace(x.Cont); cont != "" {
		rec.Continent = &cont
	}
	return rec, true
}

func parseID(s string) (country.DXCC, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, false
	}
	return country.DXCC(v), true
}

func parseUint8(s string) *uint8 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return nil
	}
	return country.Ptr(uint8(v))
}

func parseFloat32(s string) *float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return country.Ptr(float32(v))
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseOptionalTime(s string) *time.Time {
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}
