package file

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/parameter"
)

// Decide kinds.
const (
	DecideConst  = "const"
	DecideParam  = "param"
	DecideLookup = "lookup"
)

var transforms = map[string]parameter.Transform{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
}

// decider builds the Decider described by spec. A nil spec selects index 0.
func decider(spec *DecideSpec) (domain.Decider, error) {
	if spec == nil {
		return domain.Always(0), nil
	}

	switch strings.ToLower(strings.TrimSpace(spec.Kind)) {
	case DecideConst, "":
		return domain.Always(spec.Index), nil
	case DecideParam:
		if spec.Param == "" {
			return nil, fmt.Errorf("decide kind %q needs a param", DecideParam)
		}
		name := spec.Param
		return domain.DecideFunc(func(in domain.ProcessedInput) (int, error) {
			raw := in.Value(name)
			idx, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return 0, fmt.Errorf("parameter %q is not an index: %q", name, raw)
			}
			return idx, nil
		}), nil
	case DecideLookup:
		if spec.Param == "" {
			return nil, fmt.Errorf("decide kind %q needs a param", DecideLookup)
		}
		name, values, def := spec.Param, spec.Values, spec.Default
		return domain.DecideFunc(func(in domain.ProcessedInput) (int, error) {
			raw := in.Value(name)
			if idx, ok := values[raw]; ok {
				return idx, nil
			}
			if def != nil {
				return *def, nil
			}
			return 0, fmt.Errorf("no target for %s=%q", name, raw)
		}), nil
	default:
		return nil, fmt.Errorf("unknown decide kind %q", spec.Kind)
	}
}

// pattern builds the parameter pattern described by spec.
func pattern(spec *ParametersSpec) (*parameter.Pattern, error) {
	fields := make([]parameter.Field, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		var opts []parameter.Option
		if f.Transform != "" {
			fn, ok := transforms[strings.ToLower(f.Transform)]
			if !ok {
				return nil, fmt.Errorf("field %q: unknown transform %q", f.Name, f.Transform)
			}
			opts = append(opts, parameter.WithTransform(fn))
		}
		if f.Default != nil {
			opts = append(opts, parameter.WithDefault(*f.Default))
		}
		p, err := parameter.New(f.Regex, opts...)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		fields = append(fields, parameter.Field{Name: f.Name, Param: p})
	}

	delimiter := spec.Delimiter
	if delimiter == "" {
		delimiter = `\s+`
	}
	return parameter.NewPattern(delimiter, fields...)
}
