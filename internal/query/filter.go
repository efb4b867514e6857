// Package query models the artifact listing query: filter fields, sort,
// and offset pagination. All functions are pure: a Filter is a value,
// every mutation returns a new one. Serialization targets the backend's
// /api/v1/artifacts/ listing endpoint.
package query

import (
	"net/url"
	"strconv"
	"time"
)

// Label is the three-way evaluation classification, plus the pseudo-label
// for artifacts the backend has not evaluated yet.
type Label string

const (
	LabelSignal       Label = "Signal"
	LabelReview       Label = "Review"
	LabelNoise        Label = "Noise"
	LabelNotEvaluated Label = "not_evaluated"
)

// SortField identifies a server-side sort column.
type SortField string

const (
	SortCreatedAt  SortField = "created_at"
	SortTitle      SortField = "title"
	SortConfidence SortField = "confidence"
	SortPubDate    SortField = "pub_date"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Defaults for the non-optional fields.
const (
	DefaultLimit = 50
	DefaultSkip  = 0
)

// Field keys accepted by Set and Clear. These double as the wire parameter
// names (snake_case, matching the backend).
const (
	KeyLabel          = "label"
	KeySourceID       = "source_id"
	KeyIncludeDeleted = "include_deleted_sources"
	KeyMimeType       = "mime_type"
	KeyCreatedAfter   = "created_after"
	KeyCreatedBefore  = "created_before"
	KeyPubDateAfter   = "pub_date_after"
	KeyPubDateBefore  = "pub_date_before"
	KeyOrganization   = "organization"
	KeyLanguage       = "language"
	KeyTopic          = "topic"
	KeyGeoLocation    = "geo_location"
	KeyAuthor         = "author"
	KeyMinConfidence  = "min_confidence"
	KeyMaxConfidence  = "max_confidence"
	KeyHasNormalized  = "has_normalized"
	KeySortBy         = "sort_by"
	KeySortOrder      = "sort_order"
	KeyLimit          = "limit"
	KeySkip           = "skip"
)

// dateLayout is the calendar-date wire format (no time component).
const dateLayout = "2006-01-02"

// Filter is the user's current query intent. Optional fields are pointers;
// nil means "no filter on this field". Confidence bounds are raw floats in
// [0, 1] — the UI edits them as 0-100 integers and converts at the boundary.
//
// No cross-field validation is performed: CreatedAfter > CreatedBefore and
// MinConfidence > MaxConfidence are representable and sent as-is. The
// backend is the authority on rejecting nonsense ranges.
type Filter struct {
	Label         *Label
	SourceID      *string
	MimeType      *string
	CreatedAfter  *string // YYYY-MM-DD
	CreatedBefore *string
	PubDateAfter  *string
	PubDateBefore *string
	Organization  *string
	Language      *string
	Topic         *string
	GeoLocation   *string
	Author        *string
	MinConfidence *float64
	MaxConfidence *float64
	HasNormalized *bool

	IncludeDeletedSources bool
	SortBy                SortField
	SortOrder             SortOrder
	Limit                 int
	Skip                  int
}

// Default returns the canonical default filter: all optional fields unset,
// deleted sources included, newest-first, first page of 50.
func Default() Filter {
	return Filter{
		IncludeDeletedSources: true,
		SortBy:                SortCreatedAt,
		SortOrder:             Desc,
		Limit:                 DefaultLimit,
		Skip:                  DefaultSkip,
	}
}

// validLabels guards Set against values outside the enum.
var validLabels = map[Label]bool{
	LabelSignal:       true,
	LabelReview:       true,
	LabelNoise:        true,
	LabelNotEvaluated: true,
}

var validSortFields = map[SortField]bool{
	SortCreatedAt:  true,
	SortTitle:      true,
	SortConfidence: true,
	SortPubDate:    true,
}

// Set returns a copy of f with one field replaced, parsed from raw string
// input (UI controls and CLI flags both speak strings). An empty raw value
// clears the field; malformed input is coerced to the cleared state rather
// than rejected, so a half-typed number never poisons the query. Unknown
// keys are ignored.
func (f Filter) Set(key, raw string) Filter {
	if raw == "" {
		return f.Clear(key)
	}

	switch key {
	case KeyLabel:
		if l := Label(raw); validLabels[l] {
			f.Label = &l
		} else {
			f.Label = nil
		}
	case KeySourceID:
		f.SourceID = strptr(raw)
	case KeyIncludeDeleted:
		if b, err := strconv.ParseBool(raw); err == nil {
			f.IncludeDeletedSources = b
		}
	case KeyMimeType:
		f.MimeType = strptr(raw)
	case KeyCreatedAfter:
		f.CreatedAfter = dateptr(raw)
	case KeyCreatedBefore:
		f.CreatedBefore = dateptr(raw)
	case KeyPubDateAfter:
		f.PubDateAfter = dateptr(raw)
	case KeyPubDateBefore:
		f.PubDateBefore = dateptr(raw)
	case KeyOrganization:
		f.Organization = strptr(raw)
	case KeyLanguage:
		f.Language = strptr(raw)
	case KeyTopic:
		f.Topic = strptr(raw)
	case KeyGeoLocation:
		f.GeoLocation = strptr(raw)
	case KeyAuthor:
		f.Author = strptr(raw)
	case KeyMinConfidence:
		f.MinConfidence = confptr(raw)
	case KeyMaxConfidence:
		f.MaxConfidence = confptr(raw)
	case KeyHasNormalized:
		if b, err := strconv.ParseBool(raw); err == nil {
			f.HasNormalized = &b
		} else {
			f.HasNormalized = nil
		}
	case KeySortBy:
		if s := SortField(raw); validSortFields[s] {
			f.SortBy = s
		}
	case KeySortOrder:
		switch SortOrder(raw) {
		case Asc, Desc:
			f.SortOrder = SortOrder(raw)
		}
	case KeyLimit:
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			f.Limit = n
		}
	case KeySkip:
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			f.Skip = n
		}
	}
	return f
}

// Clear returns a copy of f with one field reverted to its default.
func (f Filter) Clear(key string) Filter {
	switch key {
	case KeyLabel:
		f.Label = nil
	case KeySourceID:
		f.SourceID = nil
	case KeyIncludeDeleted:
		f.IncludeDeletedSources = true
	case KeyMimeType:
		f.MimeType = nil
	case KeyCreatedAfter:
		f.CreatedAfter = nil
	case KeyCreatedBefore:
		f.CreatedBefore = nil
	case KeyPubDateAfter:
		f.PubDateAfter = nil
	case KeyPubDateBefore:
		f.PubDateBefore = nil
	case KeyOrganization:
		f.Organization = nil
	case KeyLanguage:
		f.Language = nil
	case KeyTopic:
		f.Topic = nil
	case KeyGeoLocation:
		f.GeoLocation = nil
	case KeyAuthor:
		f.Author = nil
	case KeyMinConfidence:
		f.MinConfidence = nil
	case KeyMaxConfidence:
		f.MaxConfidence = nil
	case KeyHasNormalized:
		f.HasNormalized = nil
	case KeySortBy:
		f.SortBy = SortCreatedAt
	case KeySortOrder:
		f.SortOrder = Desc
	case KeyLimit:
		f.Limit = DefaultLimit
	case KeySkip:
		f.Skip = DefaultSkip
	}
	return f
}

// ActiveCount reports how many fields differ from the default filter, for
// the "N filters" badge. IncludeDeletedSources never counts; sort, limit
// and skip count only when they differ from their defaults. Display-only —
// never used for query correctness.
func (f Filter) ActiveCount() int {
	n := 0
	for _, p := range []*string{
		f.SourceID, f.MimeType,
		f.CreatedAfter, f.CreatedBefore, f.PubDateAfter, f.PubDateBefore,
		f.Organization, f.Language, f.Topic, f.GeoLocation, f.Author,
	} {
		if p != nil {
			n++
		}
	}
	if f.Label != nil {
		n++
	}
	if f.MinConfidence != nil {
		n++
	}
	if f.MaxConfidence != nil {
		n++
	}
	if f.HasNormalized != nil {
		n++
	}
	if f.SortBy != SortCreatedAt {
		n++
	}
	if f.SortOrder != Desc {
		n++
	}
	if f.Limit != DefaultLimit {
		n++
	}
	if f.Skip != DefaultSkip {
		n++
	}
	return n
}

// Values flattens the filter plus an optional free-text search term into
// outbound query parameters. Confidence bounds are serialized as raw floats
// (0.2, not 20). Sort, limit and skip are always present so the backend
// never has to guess paging defaults.
func (f Filter) Values(search string) url.Values {
	v := url.Values{}

	if f.Label != nil {
		v.Set(KeyLabel, string(*f.Label))
	}
	setstr := func(key string, p *string) {
		if p != nil {
			v.Set(key, *p)
		}
	}
	setstr(KeySourceID, f.SourceID)
	setstr(KeyMimeType, f.MimeType)
	setstr(KeyCreatedAfter, f.CreatedAfter)
	setstr(KeyCreatedBefore, f.CreatedBefore)
	setstr(KeyPubDateAfter, f.PubDateAfter)
	setstr(KeyPubDateBefore, f.PubDateBefore)
	setstr(KeyOrganization, f.Organization)
	setstr(KeyLanguage, f.Language)
	setstr(KeyTopic, f.Topic)
	setstr(KeyGeoLocation, f.GeoLocation)
	setstr(KeyAuthor, f.Author)
	if f.MinConfidence != nil {
		v.Set(KeyMinConfidence, strconv.FormatFloat(*f.MinConfidence, 'g', -1, 64))
	}
	if f.MaxConfidence != nil {
		v.Set(KeyMaxConfidence, strconv.FormatFloat(*f.MaxConfidence, 'g', -1, 64))
	}
	if f.HasNormalized != nil {
		v.Set(KeyHasNormalized, strconv.FormatBool(*f.HasNormalized))
	}
	if !f.IncludeDeletedSources {
		v.Set(KeyIncludeDeleted, "false")
	}
	if search != "" {
		v.Set("search", search)
	}

	v.Set(KeySortBy, string(f.SortBy))
	v.Set(KeySortOrder, string(f.SortOrder))
	v.Set(KeyLimit, strconv.Itoa(f.Limit))
	v.Set(KeySkip, strconv.Itoa(f.Skip))

	return v
}

// Equal reports whether two filters describe the same query. Pointer fields
// compare by value, not identity.
func (f Filter) Equal(other Filter) bool {
	return eqLabel(f.Label, other.Label) &&
		eqStr(f.SourceID, other.SourceID) &&
		eqStr(f.MimeType, other.MimeType) &&
		eqStr(f.CreatedAfter, other.CreatedAfter) &&
		eqStr(f.CreatedBefore, other.CreatedBefore) &&
		eqStr(f.PubDateAfter, other.PubDateAfter) &&
		eqStr(f.PubDateBefore, other.PubDateBefore) &&
		eqStr(f.Organization, other.Organization) &&
		eqStr(f.Language, other.Language) &&
		eqStr(f.Topic, other.Topic) &&
		eqStr(f.GeoLocation, other.GeoLocation) &&
		eqStr(f.Author, other.Author) &&
		eqFloat(f.MinConfidence, other.MinConfidence) &&
		eqFloat(f.MaxConfidence, other.MaxConfidence) &&
		eqBool(f.HasNormalized, other.HasNormalized) &&
		f.IncludeDeletedSources == other.IncludeDeletedSources &&
		f.SortBy == other.SortBy &&
		f.SortOrder == other.SortOrder &&
		f.Limit == other.Limit &&
		f.Skip == other.Skip
}

func eqStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqLabel(a, b *Label) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqBool(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strptr(s string) *string { return &s }

// dateptr parses a calendar date, coercing malformed input to nil.
func dateptr(raw string) *string {
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return nil
	}
	return &raw
}

// confptr parses a confidence bound, clamping to [0, 1] and coercing
// malformed input to nil.
func confptr(raw string) *float64 {
	c, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return &c
}
