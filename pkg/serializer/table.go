package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

const emptyValue = "<empty>"

// writeTable renders data as FIELD/VALUE rows. Nested values are flattened
// into dotted paths with [i] for slice elements. Data goes through its JSON
// form first so custom marshalers are honored.
func writeTable(w io.Writer, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize to table: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return fmt.Errorf("failed to serialize to table: %w", err)
	}

	rows := make([][2]string, 0)
	flatten("", generic, &rows)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"FIELD", "VALUE"})
	if len(rows) == 0 {
		t.AppendRow(table.Row{emptyValue, ""})
	}
	for _, r := range rows {
		t.AppendRow(table.Row{r[0], r[1]})
	}
	t.Render()
	return nil
}

func flatten(prefix string, v any, rows *[][2]string) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(join(prefix, k), val[k], rows)
		}
	case []any:
		for i, item := range val {
			flatten(prefix+"["+strconv.Itoa(i)+"]", item, rows)
		}
	case nil:
		*rows = append(*rows, [2]string{field(prefix), "<nil>"})
	default:
		*rows = append(*rows, [2]string{field(prefix), fmt.Sprint(val)})
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func field(prefix string) string {
	if prefix == "" {
		return "value"
	}
	return prefix
}
