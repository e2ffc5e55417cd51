// internal/config/validate.go
//
// Schema validation over the decoded document. Every violation is
// collected before reporting so the user can fix the whole file in one
// pass instead of playing error whack-a-mole.

package config

import (
	"fmt"
	"strings"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("The option %q %s", e.Field, e.Message)
}

// ConfigError aggregates every violation found in one validation pass.
type ConfigError struct {
	Errs []error
}

func (e *ConfigError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "The following errors were found while attempting to parse the config file:\n" + strings.Join(msgs, "\n")
}

func (e *ConfigError) Unwrap() []error { return e.Errs }

// validate checks raw against the schema, applies defaults for absent
// optional fields, and assembles the Config. Errors never short-circuit:
// the whole schema is walked and every problem reported together.
func validate(raw map[string]any) (*Config, error) {
	var errs []error
	vals := make(map[string]any, len(schema))

	for _, f := range schema {
		v, ok := raw[f.name]
		if !ok {
			if f.required {
				errs = append(errs, &ValidationError{
					Field:   f.name,
					Message: "is required but was not found",
				})
			} else {
				vals[f.name] = f.def
			}
			continue
		}
		norm, ok := coerce(f.kind, v)
		if !ok {
			errs = append(errs, &ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("is type %q but it should be of type %q", typeName(v), f.kind),
			})
			continue
		}
		vals[f.name] = norm
	}

	if len(errs) > 0 {
		return nil, &ConfigError{Errs: errs}
	}

	return &Config{
		Volumes:          vals["volumes"].([]string),
		DockerArgs:       vals["dockerargs"].(string),
		Arches:           vals["arches"].([]string),
		Image:            vals["image"].(string),
		ContainerName:    vals["containername"].(string),
		Build:            vals["build"].(string),
		RemoveContainers: vals["removecontainers"].(bool),
	}, nil
}

// coerce reports whether v matches the declared kind and returns it in
// its canonical Go shape. JSON decodes lists as []any; YAML may produce
// []any or []string depending on content, so both are accepted.
func coerce(k kind, v any) (any, bool) {
	switch k {
	case kindString:
		s, ok := v.(string)
		return s, ok
	case kindBool:
		b, ok := v.(bool)
		return b, ok
	case kindStringList:
		switch list := v.(type) {
		case []string:
			return list, true
		case []any:
			out := make([]string, len(list))
			for i, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, false
				}
				out[i] = s
			}
			return out, true
		}
	}
	return nil, false
}

// typeName names the decoded runtime type for error messages.
func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case float64, int, int64, uint64:
		return "number"
	case []any, []string:
		return "list"
	case map[string]any:
		return "object"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
