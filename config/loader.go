// Package config loads run descriptions written in CUE.
package config

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads a stack of CUE files, validating each against a schema.
// Files earlier in the stack take precedence.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

// NewLoader prepares a loader. Files are read on first use.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			var schema cue.Value
			if schemaSrc != "" {
				ctx := cuecontext.New()
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err = schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, filePath := range filePaths {
				var content []byte
				content, err = os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				ctx := cuecontext.New()
				value := ctx.CompileBytes(content, cue.Filename(filePath))
				if err = value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err = schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
						return nil, err
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

// Values yields every file's value at path, along with the file it came from.
func (l Loader) Values(path string) iter.Seq2[cue.Value, string] {
	return func(yield func(cue.Value, string) bool) {
		roots, err := l.getRoots()
		if err != nil {
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Exists() && value.Err() == nil {
				if !yield(value, info.path) {
					return
				}
			}
		}
	}
}

// Err reports any error reading or validating the files.
func (l Loader) Err() error {
	_, err := l.getRoots()
	return err
}

// First returns the first value at path.
func (l Loader) First(path string) (value cue.Value, file string, err error) {
	err = l.Err()
	if err != nil {
		return
	}

	found := false
	for candidate, where := range l.Values(path) {
		value, file, found = candidate, where, true
		break
	}

	if !found {
		err = ErrValueNotFound
	}

	return
}

// AssignFirst decodes the first value at path into target.
func (l Loader) AssignFirst(path string, target any) error {
	value, _, err := l.First(path)
	if err != nil {
		return err
	}

	return value.Decode(target)
}
