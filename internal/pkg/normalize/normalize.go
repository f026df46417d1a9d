package normalize

import (
	"careportal-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var ErrNotAList = errors.New("payload is neither a JSON array nor a results envelope")

// MissingFieldError reports a record that lacks a field the portal cannot
// render without. Field names the first alias that was looked up.
type MissingFieldError struct {
	Resource string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s record is missing field %q", e.Resource, e.Field)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	constvars.DateLayout,
}

// Normalizer maps backend JSON into the portal's record shapes. Times without
// a zone are read in loc, and every time is converted to loc for display.
type Normalizer struct {
	Log      *zap.Logger
	Location *time.Location
}

func NewNormalizer(logger *zap.Logger, loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{Log: logger, Location: loc}
}

// Records returns the elements of a list payload. The backend answers with a
// bare array or a paginated {"results": [...]} envelope.
func Records(body []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrNotAList
	}
	parsed := gjson.ParseBytes(body)
	if parsed.IsArray() {
		return parsed.Array(), nil
	}
	if results := parsed.Get("results"); results.IsArray() {
		return results.Array(), nil
	}
	return nil, ErrNotAList
}

// Object parses a single-record payload.
func Object(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, ErrNotAList
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return gjson.Result{}, fmt.Errorf("payload is not a JSON object")
	}
	return parsed, nil
}

// collect converts every record and drops the ones that fail, logging each
// drop so a backend contract change shows up in the logs.
func collect[T any](n *Normalizer, resource string, records []gjson.Result, convert func(gjson.Result) (T, error)) []T {
	out := make([]T, 0, len(records))
	for i, record := range records {
		item, err := convert(record)
		if err != nil {
			var missing *MissingFieldError
			field := ""
			if errors.As(err, &missing) {
				field = missing.Field
			}
			n.Log.Warn("Normalizer dropped backend record",
				zap.String(constvars.LoggingResourceKey, resource),
				zap.Int(constvars.LoggingRecordIndexKey, i),
				zap.String(constvars.LoggingFieldKey, field),
				zap.Error(err),
			)
			continue
		}
		out = append(out, item)
	}
	return out
}

// first returns the first alias that holds a non-null scalar value.
func first(record gjson.Result, aliases ...string) (gjson.Result, bool) {
	for _, alias := range aliases {
		value := record.Get(alias)
		if !value.Exists() || value.Type == gjson.Null || value.IsObject() || value.IsArray() {
			continue
		}
		if value.Type == gjson.String && strings.TrimSpace(value.Str) == "" {
			continue
		}
		return value, true
	}
	return gjson.Result{}, false
}

// firstObject returns the first alias that holds a JSON object.
func firstObject(record gjson.Result, aliases ...string) (gjson.Result, bool) {
	for _, alias := range aliases {
		value := record.Get(alias)
		if value.IsObject() {
			return value, true
		}
	}
	return gjson.Result{}, false
}

func requiredString(record gjson.Result, resource string, aliases ...string) (string, error) {
	value, ok := first(record, aliases...)
	if !ok {
		return "", &MissingFieldError{Resource: resource, Field: aliases[0]}
	}
	return strings.TrimSpace(value.String()), nil
}

func optionalString(record gjson.Result, fallback string, aliases ...string) string {
	value, ok := first(record, aliases...)
	if !ok {
		return fallback
	}
	return strings.TrimSpace(value.String())
}

func (n *Normalizer) requiredTime(record gjson.Result, resource string, aliases ...string) (time.Time, error) {
	value, ok := first(record, aliases...)
	if !ok {
		return time.Time{}, &MissingFieldError{Resource: resource, Field: aliases[0]}
	}
	parsed, err := n.parseTime(value.String())
	if err != nil {
		return time.Time{}, fmt.Errorf("%s field %q: %w", resource, aliases[0], err)
	}
	return parsed, nil
}

func (n *Normalizer) optionalTime(record gjson.Result, aliases ...string) *time.Time {
	value, ok := first(record, aliases...)
	if !ok {
		return nil
	}
	parsed, err := n.parseTime(value.String())
	if err != nil {
		return nil
	}
	return &parsed
}

func (n *Normalizer) parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		parsed, err := time.ParseInLocation(layout, value, n.Location)
		if err == nil {
			return parsed.In(n.Location), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

// joinName builds a display name from separate name fields, falling back to
// a single full-name field.
func joinName(record gjson.Result, prefix string) string {
	firstName := optionalString(record, "", prefix+"first_name", prefix+"firstName")
	lastName := optionalString(record, "", prefix+"last_name", prefix+"lastName")
	name := strings.TrimSpace(firstName + " " + lastName)
	if name != "" {
		return name
	}
	return optionalString(record, "", prefix+"full_name", prefix+"fullName", prefix+"name")
}
