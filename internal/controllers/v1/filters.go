package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilter filters a text column by substring match. A parameter that is
// set, but empty matches only resources where the column is empty, too.
func stringFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		query = query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	} else if slices.Contains(setFields, field) {
		query = query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}
