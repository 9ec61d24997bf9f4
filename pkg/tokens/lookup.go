package tokens

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/knadh/koanf/v2"
)

// Delimiter separates segments of a token path.
const Delimiter = "."

// catalogProvider feeds the catalog to koanf as a nested map keyed by the
// JSON names of each field.
type catalogProvider struct {
	c Catalog
}

func (p catalogProvider) ReadBytes() ([]byte, error) {
	return nil, errReadBytes
}

func (p catalogProvider) Read() (map[string]any, error) {
	raw, err := json.Marshal(p.c)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

var index = sync.OnceValues(func() (*koanf.Koanf, error) {
	k := koanf.New(Delimiter)
	if err := k.Load(catalogProvider{c: catalog}, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndex, err)
	}
	return k, nil
})

// Lookup returns the token or group at a dotted path such as
// "colors.brand.primary.orange" or "typography.fontSize.2xl". Groups come
// back as map[string]any and numeric leaves as float64.
func Lookup(path string) (any, error) {
	k, err := index()
	if err != nil {
		return nil, err
	}
	if path == "" || !k.Exists(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return k.Get(path), nil
}

// Paths lists every leaf path in sorted order.
func Paths() ([]string, error) {
	k, err := index()
	if err != nil {
		return nil, err
	}
	return k.Keys(), nil
}

// Flatten returns every leaf keyed by its dotted path.
func Flatten() (map[string]any, error) {
	k, err := index()
	if err != nil {
		return nil, err
	}
	return k.All(), nil
}
