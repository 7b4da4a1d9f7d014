package dataset

import (
	"sort"
	"strings"

	"github.com/Ramiogue/dashboard-app2/internal/models"
)

var requiredColumns = []string{
	models.ColumnMerchant,
	models.ColumnDate,
	models.ColumnAmount,
}

// columns holds the header positions of the three required fields. After
// validation all row access goes through these indices; nothing downstream
// looks up columns by name again.
type columns struct {
	merchant int
	date     int
	amount   int
}

// validateSchema checks the header for the required columns and resolves
// their positions. Missing names are reported sorted so the error message
// is deterministic.
func validateSchema(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return columns{}, &SchemaError{Missing: missing}
	}

	return columns{
		merchant: index[models.ColumnMerchant],
		date:     index[models.ColumnDate],
		amount:   index[models.ColumnAmount],
	}, nil
}
