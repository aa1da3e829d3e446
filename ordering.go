package pagenav

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction of a paginated query.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return lo.Ternary(d == DirectionASC, DirectionDESC, DirectionASC)
}

type (
	// Orderings is a multi-column ORDER BY. Numbered pages are only stable
	// when the last column is unique.
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps external column aliases (as sent by API clients) to
	// internal column names, e.g. "created" -> "users.created_at".
	ColumnMapping = map[ColumnAlias]string
)

var _columnNameCharset = append([]rune("_.`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	if o.Column == "" {
		return fmt.Errorf("empty ordering column")
	}

	// Column names end up in raw SQL.
	if !lo.Every(_columnNameCharset, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// String returns "<column> <direction>".
func (o OrderBy) String() string {
	return fmt.Sprintf("%s %s", o.Column, o.Direction)
}

// ToSQL joins orderings into an ORDER BY body.
//
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(lo.Map(o, func(item OrderBy, _ int) string {
		return item.String()
	}), ", ")
}

// Apply applies the ordering to a gorm query. Empty orderings leave the query
// unchanged.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

// With appends orderings, replacing an earlier ordering by the same column.
func (o Orderings) With(orderBy ...OrderBy) Orderings {
	ret := append(Orderings(nil), o...)
	for _, item := range orderBy {
		ret = lo.Reject(ret, func(processed OrderBy, _ int) bool {
			return processed.Column == item.Column
		})
		ret = append(ret, item)
	}

	return ret
}

func (o Orderings) validate() error {
	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds Orderings from strings in the format "alias asc|desc". A
// bare alias sorts ascending. Aliases are resolved via columnMapping; an
// unknown alias returns an error naming the closest known one.
func ParseSort(sort []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(sort))
	aliases := lo.Keys(columnMapping)

	for _, raw := range sort {
		fields := strings.Fields(raw)
		if len(fields) == 0 || len(fields) > 2 {
			return nil, fmt.Errorf("invalid ordering string format '%s'", raw)
		}

		direction := DirectionASC
		if len(fields) == 2 {
			direction = Direction(strings.ToUpper(fields[1]))
		}

		column, ok := columnMapping[fields[0]]
		if !ok || column == "" {
			return nil, fmt.Errorf("invalid column alias '%s'. closest: '%s'", fields[0], closestAlias(fields[0], aliases))
		}

		orderBy := OrderBy{Column: column, Direction: direction}
		if err := orderBy.validate(); err != nil {
			return nil, err
		}

		ret = ret.With(orderBy)
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, aliases []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, alias := range aliases {
		dist := levenshtein([]rune(alias), []rune(input))
		// Ties go to the lexically smaller alias so map order does not leak.
		if dist < minDist || (dist == minDist && alias < closest) {
			minDist = dist
			closest = alias
		}
	}

	return closest
}
