package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/KongaYvan/Automates/pkg/domain"
)

// fileDefinition mirrors the on-disk layout before it becomes a domain.Definition.
type fileDefinition struct {
	Name        string           `mapstructure:"name"`
	States      []fileState      `mapstructure:"states" validate:"dive"`
	Transitions []fileTransition `mapstructure:"transitions" validate:"dive"`
}

type fileState struct {
	Name    string `mapstructure:"name" validate:"required"`
	Initial bool   `mapstructure:"initial"`
	Final   bool   `mapstructure:"final"`
}

type fileTransition struct {
	From   string `mapstructure:"from" validate:"required"`
	To     string `mapstructure:"to" validate:"required"`
	Symbol string `mapstructure:"symbol" validate:"len=1"`
}

// Loader implements ports.DefinitionLoader for YAML and JSON files.
type Loader struct {
	Path string
}

// New creates a loader for the definition file at path.
func New(path string) *Loader {
	return &Loader{Path: path}
}

// Load reads and decodes the definition file.
// When the file has no name, the base file name without extension is used.
func (l *Loader) Load(ctx context.Context) (domain.Definition, error) {
	if err := ctx.Err(); err != nil {
		return domain.Definition{}, err
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return domain.Definition{}, fmt.Errorf("failed to read definition: %w", err)
	}

	def, err := Decode(data, filepath.Ext(l.Path))
	if err != nil {
		return domain.Definition{}, fmt.Errorf("%s: %w", l.Path, err)
	}
	if def.Name == "" {
		base := filepath.Base(l.Path)
		def.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return def, nil
}

// Decode parses a definition document. ext selects the format (".json", or
// ".yaml"/".yml"/"" for YAML).
func Decode(data []byte, ext string) (domain.Definition, error) {
	var raw map[string]any

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return domain.Definition{}, fmt.Errorf("failed to parse json: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Definition{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return domain.Definition{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	var fd fileDefinition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  scalarHook,
		ErrorUnused: true,
		Result:      &fd,
	})
	if err != nil {
		return domain.Definition{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Definition{}, fmt.Errorf("failed to decode definition: %w", err)
	}

	if err := validate.Struct(fd); err != nil {
		return domain.Definition{}, toAggregate(err)
	}

	return fd.toDomain(), nil
}

func (fd fileDefinition) toDomain() domain.Definition {
	def := domain.Definition{Name: fd.Name}
	for _, s := range fd.States {
		def.States = append(def.States, domain.StateSpec{Name: s.Name, Initial: s.Initial, Final: s.Final})
	}
	for _, t := range fd.Transitions {
		// validator has already checked the symbol is exactly one character.
		sym, _ := utf8.DecodeRuneInString(t.Symbol)
		def.Transitions = append(def.Transitions, domain.TransitionSpec{From: t.From, To: t.To, Symbol: sym})
	}
	return def
}

// scalarHook lets unquoted YAML scalars through where a string is expected
// (symbol: 1) and accepts y/n answers for the initial and final flags.
func scalarHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.String:
		switch v := data.(type) {
		case int, int64, uint64, float64:
			return fmt.Sprint(v), nil
		case bool:
			return nil, fmt.Errorf("expected a character, got boolean %v", v)
		}
	case reflect.Bool:
		if s, ok := data.(string); ok {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "y", "yes", "true":
				return true, nil
			case "n", "no", "false", "":
				return false, nil
			default:
				return nil, fmt.Errorf("expected y/n, got %q", s)
			}
		}
	}
	return data, nil
}
