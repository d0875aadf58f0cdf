// Package countryfile parses the cty.csv country file published at
// country-files.com into a country.Database.
//
// Each line holds ten comma-separated fields: primary prefix, name, entity id,
// continent, CQ zone, ITU zone, latitude, longitude, UTC offset and a
// space-separated list of prefix tokens such as "=K1A", "KL7(1)[1]" or "K;".
package countryfile

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

// DefaultURL is the canonical download location of cty.csv.
const DefaultURL = "https://www.country-files.com/cty/cty.csv"

const fieldCount = 10

// Field positions within a line
const (
	fieldPrefix = iota
	fieldName
	fieldID
	fieldContinent
	fieldCQZone
	fieldITUZone
	fieldLat
	fieldLon
	fieldTimezone
	fieldTokens
)

// maxLineSize bounds a single line; the largest real lines are a few KB.
const maxLineSize = 1 << 20

// Parser reads cty.csv documents. The zero value logs through the package
// logger and stamps databases with time.Now.
type Parser struct {
	Logger logger.Logger
	Now    func() time.Time
}

// Parse reads a cty.csv document with the given logger, which may be nil.
func Parse(r io.Reader, log logger.Logger) (*country.Database, error) {
	p := &Parser{Logger: log}
	return p.Parse(r)
}

// Parse reads the whole document. Malformed lines and tokens are skipped with
// a warning; only a failing reader is an error.
func (p *Parser) Parse(r io.Reader) (*country.Database, error) {
	log := p.Logger
	if log == nil {
		log = GetLogger()
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	var (
		entities []country.Entity
		prefixes []country.Prefix
		skipped  int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if strings.HasPrefix(fields[0], "*") {
			continue
		}
		if len(fields) != fieldCount {
			log.Warn("skipping line with unexpected field count",
				logger.Int("line", lineNo),
				logger.Int("fields", len(fields)))
			skipped++
			continue
		}

		id, err := strconv.ParseUint(strings.TrimSpace(fields[fieldID]), 10, 16)
		if err != nil {
			log.Warn("skipping line with invalid entity id",
				logger.Int("line", lineNo),
				logger.String("id", fields[fieldID]))
			skipped++
			continue
		}
		dxcc := country.DXCC(id)

		for token := range strings.FieldsSeq(fields[fieldTokens]) {
			rec, ok := parseToken(token, dxcc, log.With(logger.Int("line", lineNo)))
			if ok {
				prefixes = append(prefixes, rec)
			}
		}

		entities = append(entities, country.Entity{
			ID:        dxcc,
			Prefix:    strings.TrimSpace(fields[fieldPrefix]),
			Name:      strings.TrimSpace(fields[fieldName]),
			Continent: strings.TrimSpace(fields[fieldContinent]),
			CQZone:    parseUint8(fields[fieldCQZone]),
			ITUZone:   parseUint8(fields[fieldITUZone]),
			Lat:       parseFloat32(fields[fieldLat]),
			Lon:       parseFloat32(fields[fieldLon]),
			Timezone:  parseFloat32(fields[fieldTimezone]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.New(err).
			Component("countryfile").
			Category(errors.CategoryFileParsing).
			Context("line", lineNo).
			Build()
	}

	db := country.Build(now(), entities, prefixes)
	log.Debug("country file parsed",
		logger.Int("entities", len(db.Entities)),
		logger.Int("prefix_groups", len(db.Prefixes)),
		logger.Int("skipped_lines", skipped))

	return db, nil
}

// parseToken parses one prefix token. A leading '=' marks an exact callsign;
// the literal runs up to the first '(', '[' or ';'; "(n)" overrides the CQ
// zone and "[n]" the ITU zone, the last occurrence of each winning.
func parseToken(token string, id country.DXCC, log logger.Logger) (country.Prefix, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return country.Prefix{}, false
	}

	rec := country.Prefix{EntityID: id}
	if rest, ok := strings.CutPrefix(token, "="); ok {
		rec.Exact = true
		token = rest
	}

	end := strings.IndexAny(token, "([;")
	if end < 0 {
		end = len(token)
	}
	rec.Prefix = token[:end]
	rest := token[end:]

	if rec.Prefix == "" {
		log.Warn("skipping prefix token without literal", logger.String("token", token))
		return country.Prefix{}, false
	}

	for rest != "" {
		switch rest[0] {
		case '(':
			value, remaining := annotation(rest[1:], ')')
			if v := parseUint8(value); v != nil {
				rec.CQZone = v
			} else {
				log.Warn("ignoring invalid CQ zone override",
					logger.String("prefix", rec.Prefix),
					logger.String("value", value))
			}
			rest = remaining
		case '[':
			value, remaining := annotation(rest[1:], ']')
			if v := parseUint8(value); v != nil {
				rec.ITUZone = v
			} else {
				log.Warn("ignoring invalid ITU zone override",
					logger.String("prefix", rec.Prefix),
					logger.String("value", value))
			}
			rest = remaining
		case ';':
			rest = rest[1:]
		default:
			log.Warn("unexpected character in prefix token",
				logger.String("prefix", rec.Prefix),
				logger.String("char", rest[:1]))
			rest = rest[1:]
		}
	}

	return rec, true
}

// annotation splits s at the closing delimiter. An unterminated annotation
// consumes the rest of the token.
func annotation(s string, closing byte) (value, rest string) {
	i := strings.IndexByte(s, closing)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
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
