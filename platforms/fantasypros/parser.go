package fantasypros

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anaskhan96/soup"
	"github.com/dereckquock/keepers/model"
)

// parseMarketValues reads the rows of the #OverallTable auction values table.
// Rows without a name or a numeric value are skipped.
func parseMarketValues(page string) (map[string]int, error) {
	doc := soup.HTMLParse(page)
	if doc.Error != nil {
		return nil, fmt.Errorf("%w: error parsing fantasypros page: %w", model.ErrUnavailable, doc.Error)
	}

	table := doc.Find("table", "id", "OverallTable")
	if table.Error != nil {
		return nil, fmt.Errorf("%w: auction values table not found", model.ErrUnavailable)
	}
	body := table.Find("tbody")
	if body.Error != nil {
		return nil, fmt.Errorf("%w: auction values table has no body", model.ErrUnavailable)
	}

	values := make(map[string]int)
	for _, row := range body.FindAll("tr") {
		cells := row.FindAll("td")
		if len(cells) < 2 {
			continue
		}

		name := cleanPlayerName(cells[1].FullText())
		if name == "" {
			continue
		}

		value, ok := realValue(cells)
		if !ok {
			continue
		}
		values[name] = value
	}

	return values, nil
}

// cleanPlayerName turns "Marvin Harrison Jr. (ARI - WR)" into "Marvin Harrison".
func cleanPlayerName(cell string) string {
	name, _, _ := strings.Cut(cell, "(")
	name = strings.Join(strings.Fields(name), " ")
	return model.TrimNameSuffix(name)
}

func realValue(cells []soup.Root) (int, bool) {
	for _, c := range cells {
		if !hasClass(c, "RealValue") {
			continue
		}
		v := strings.TrimSpace(c.FullText())
		v = strings.TrimPrefix(v, "$")
		v = strings.ReplaceAll(v, ",", "")
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func hasClass(r soup.Root, class string) bool {
	for _, c := range strings.Fields(r.Attrs()["class"]) {
		if c == class {
			return true
		}
	}
	return false
}
