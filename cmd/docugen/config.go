package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"github.com/go-playground/validator/v10"
	"github.com/hulla/docugen"
	"gopkg.in/yaml.v3"
)

// LoadConfig is a kong.ConfigurationLoader for docugen configuration files.
// JSON and YAML are decoded with the YAML decoder; anything else is tried
// as TOML. Keys are flag names, for example "outDir" or "includes". Keys
// that are not flags are ignored.
func LoadConfig(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	values := map[string]any{}
	if yamlErr := yaml.Unmarshal(data, &values); yamlErr != nil {
		values = map[string]any{}
		if _, tomlErr := toml.Decode(string(data), &values); tomlErr != nil {
			return nil, docugen.Errorf(docugen.EINVALID, "config is neither YAML, JSON nor TOML: %v", tomlErr)
		}
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		raw, ok := values[flag.Name]
		if !ok {
			return nil, nil
		}
		return configValue(raw), nil
	}), nil
}

// configValue flattens decoded values into the string form kong parses
// from the command line. Lists become comma separated.
func configValue(raw any) string {
	switch v := raw.(type) {
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprint(v)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report kong flag names so messages match the command line.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("name"); name != "" {
			return name
		}
		return strings.ToLower(fld.Name)
	})
	return v
}

// validateStruct validates s and turns the first failure into an EINVALID
// error naming the flag.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return docugen.Errorf(docugen.EINVALID, "--%s is required", flagName(fe))
	case "oneof":
		return docugen.Errorf(docugen.EINVALID, "--%s must be one of: %s", flagName(fe), fe.Param())
	case "min":
		return docugen.Errorf(docugen.EINVALID, "--%s must be at least %s", flagName(fe), fe.Param())
	case "startswith":
		return docugen.Errorf(docugen.EINVALID, "--%s entries must start with %q", flagName(fe), fe.Param())
	default:
		return docugen.Errorf(docugen.EINVALID, "--%s is invalid (%s)", flagName(fe), fe.Tag())
	}
}

// flagName strips the element index validator adds for slice entries.
func flagName(fe validator.FieldError) string {
	name, _, _ := strings.Cut(fe.Field(), "[")
	return name
}

// Validate is called by kong after parsing.
func (c *GenerateCmd) Validate() error {
	return validateStruct(c)
}

// Validate is called by kong after parsing.
func (c *RunsCmd) Validate() error {
	return validateStruct(c)
}
