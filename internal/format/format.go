// Package format writes CLI payloads as JSON (default) or EDN.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Write emits v in the requested format. format is "json" or "edn";
// anything else is an error so typos don't silently fall back.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return writeJSON(w, v, pretty)
	case "edn":
		return writeEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format %q (want json or edn)", format)
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// writeEDN targets the subset our payloads use: maps, vectors, strings,
// numbers, booleans, nil. Structs are round-tripped through JSON first so
// the EDN keys follow the same json tags the JSON output uses.
func writeEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	var sb strings.Builder
	ednValue(&sb, x, pretty, 0)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

func ednValue(sb *strings.Builder, v any, pretty bool, level int) {
	switch t := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		sb.WriteString(strconv.FormatBool(t))
	case float64:
		if t == float64(int64(t)) {
			sb.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			sb.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
		}
	case string:
		sb.WriteString(strconv.Quote(t))
	case []any:
		sb.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				ednSep(sb, pretty, level+1)
			}
			ednValue(sb, e, pretty, level+1)
		}
		sb.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				ednSep(sb, pretty, level+1)
			}
			sb.WriteByte(':')
			sb.WriteString(k)
			sb.WriteByte(' ')
			ednValue(sb, t[k], pretty, level+1)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString(strconv.Quote(fmt.Sprintf("%v", t)))
	}
}

func ednSep(sb *strings.Builder, pretty bool, level int) {
	if !pretty {
		sb.WriteByte(' ')
		return
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", level*2))
}
