package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
	"strings"
	"time"

	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero fields of an update DTO into a map of
// column updates, stamping the modified metadata.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// DateRangeFilter builds an inclusive [from, to] predicate over a single
// column; to is pushed to end-of-day so a one-day range still matches rows
// stamped during that day.
func DateRangeFilter(field, table string, from, to time.Time) dto.FilterGroup {
	endOfDay := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())

	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				ArgName:  field + "_from",
				Field:    field,
				Value:    from,
				Operator: dto.FilterOperatorGreaterEq,
				Table:    table,
			},
			dto.Filter{
				ArgName:  field + "_to",
				Field:    field,
				Value:    endOfDay,
				Operator: dto.FilterOperatorLessEq,
				Table:    table,
			},
		},
	}
}

// ParseFlexibleDate accepts the DD/MM/YYYY dates the front-desk UI sends as
// well as ISO YYYY-MM-DD, in that order.
func ParseFlexibleDate(value string) (time.Time, error) {
	if t, err := timezone.Parse(constant.DayMonthYearFormat, value); err == nil {
		return t, nil
	}

	t, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q, expected DD/MM/YYYY or YYYY-MM-DD", value)
	}

	return t, nil
}

// BuildCacheKey joins the given parts into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable cache key from pagination params
// and the active filter so distinct listings never collide.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	payload, err := json.Marshal(struct {
		Params dto.QueryParams
		Where  string
		Args   map[string]any
	}{params, where, args})
	if err != nil {
		return BuildCacheKey(prefix, "all")
	}

	hasher := fnv.New64a()
	_, _ = hasher.Write(payload)

	return BuildCacheKey(prefix, fmt.Sprintf("%x", hasher.Sum64()))
}

// InvalidateCaches drops every cached entry under the given prefix; failures
// only degrade freshness, so they are logged and swallowed.
func InvalidateCaches(ctx context.Context, store cache.RedisCache, prefix string) {
	if err := store.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
