// Package transform rewrites parsed trees between parsing and printing.
package transform

import (
	"fmt"
	"sort"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/jsonfmt/internal/errors"
	"github.com/mcncl/jsonfmt/internal/value"
)

// Style names accepted by NewRenamer.
const (
	StyleSnake     = "snake"
	StyleCamel     = "camel"
	StylePascal    = "pascal"
	StyleKebab     = "kebab"
	StyleScreaming = "screaming"
)

var styleFuncs = map[string]func(string) string{
	StyleSnake:     strcase.ToSnake,
	StyleCamel:     strcase.ToLowerCamel,
	StylePascal:    strcase.ToCamel,
	StyleKebab:     strcase.ToKebab,
	StyleScreaming: strcase.ToScreamingSnake,
}

// Renamer rewrites every object key in a tree to a single naming
// style.
type Renamer struct {
	style  string
	rename func(string) string
}

// NewRenamer builds a Renamer for the named style: snake, camel,
// pascal, kebab or screaming. An unknown name is an input error.
func NewRenamer(style string) (*Renamer, error) {
	rename, ok := styleFuncs[style]
	if !ok {
		return nil, errors.NewInputError(
			fmt.Sprintf("unknown key style %q (valid styles: snake, camel, pascal, kebab, screaming)", style),
			nil,
		)
	}
	return &Renamer{style: style, rename: rename}, nil
}

// Style reports the style name the Renamer was built with.
func (r *Renamer) Style() string {
	return r.style
}

// Apply rewrites the keys of every object in the tree rooted at v,
// deepest objects first. Keys that collide after renaming follow the
// usual last-write-wins rule; source keys are visited in sorted order
// so the surviving value is deterministic.
func (r *Renamer) Apply(v *value.Value) error {
	switch v.Kind() {
	case value.Object:
		members, err := v.Object()
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(members))
		for key := range members {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		renamed := make(map[string]*value.Value, len(members))
		for _, key := range keys {
			elem := members[key]
			if err := r.Apply(elem); err != nil {
				return err
			}
			renamed[r.rename(key)] = elem
		}

		// The member map is the live payload, so swap its contents
		// in place rather than replacing the value.
		for key := range members {
			delete(members, key)
		}
		for key, elem := range renamed {
			members[key] = elem
		}
		return nil

	case value.Array:
		elems, err := v.Array()
		if err != nil {
			return err
		}
		for _, elem := range elems {
			if err := r.Apply(elem); err != nil {
				return err
			}
		}
		return nil

	default:
		return nil
	}
}
