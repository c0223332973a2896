// Package format renders command output: {{field}} templates resolved
// against a value's JSON representation, indented JSON, and aligned tables
// for list output.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/routerctl/routerctl/internal/errors"
)

const (
	templateStartTag = "{{"
	templateEndTag   = "}}"
)

// Render resolves {{placeholder}} tags in template against the JSON field
// names of v. Nested fields are addressed with dots ({{bgp.advertiseMode}})
// and array elements by index ({{bgpPeers.0.name}}). Unknown placeholders
// render as empty strings.
func Render(template string, v interface{}) (string, error) {
	t, err := fasttemplate.NewTemplate(template, templateStartTag, templateEndTag)
	if err != nil {
		return "", errors.NewValidationError(fmt.Sprintf("invalid format template %q", template), err)
	}

	fields, err := flattenJSON(v)
	if err != nil {
		return "", err
	}

	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		value, ok := fields[strings.TrimSpace(tag)]
		if !ok {
			return 0, nil
		}
		return w.Write([]byte(value))
	}), nil
}

// JSON renders v as indented JSON, the default describe output.
func JSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.NewInternalError("failed to encode value as JSON", err)
	}
	return string(data), nil
}

// flattenJSON marshals v and flattens the result into dot-addressed leaf
// values. Objects and arrays are additionally stored whole as compact JSON
// under their own path.
func flattenJSON(v interface{}) (map[string]string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.NewInternalError("failed to encode value for formatting", err)
	}

	// UseNumber keeps numeric fields in their original notation instead of
	// reformatting them through float64.
	var decoded interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		return nil, errors.NewInternalError("failed to decode value for formatting", err)
	}

	fields := make(map[string]string)
	flattenValue("", decoded, fields)
	return fields, nil
}

func flattenValue(prefix string, v interface{}, fields map[string]string) {
	switch value := v.(type) {
	case map[string]interface{}:
		if prefix != "" {
			if data, err := json.Marshal(value); err == nil {
				fields[prefix] = string(data)
			}
		}
		for key, child := range value {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			flattenValue(path, child, fields)
		}
	case []interface{}:
		if prefix != "" {
			if data, err := json.Marshal(value); err == nil {
				fields[prefix] = string(data)
			}
		}
		for i, child := range value {
			flattenValue(fmt.Sprintf("%s.%d", prefix, i), child, fields)
		}
	case nil:
		fields[prefix] = ""
	case string:
		fields[prefix] = value
	case json.Number:
		fields[prefix] = value.String()
	default:
		fields[prefix] = fmt.Sprintf("%v", value)
	}
}
