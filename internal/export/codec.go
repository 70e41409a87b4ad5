// If you are AI: This file defines the export Codec interface and the codec registry.
// Codecs render a decoded save document in another serialization format.

package export

import (
	"errors"
	"fmt"
	"sort"

	"soledit/internal/core/protocol/amf0"
)

// ErrUnknownFormat is returned by ByName for unregistered format names.
var ErrUnknownFormat = errors.New("export: unknown format")

// Codec renders a document.
type Codec interface {
	Name() string
	Marshal(doc *amf0.Document) ([]byte, error)
}

var codecs = map[string]Codec{}

func register(c Codec) {
	codecs[c.Name()] = c
}

func init() {
	register(JSON{Indent: "  "})
	register(YAML{})
	register(Msgpack{})
	register(MustCBOR())
}

// ByName returns the codec registered under name.
func ByName(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownFormat, name, Names())
	}
	return c, nil
}

// Names lists the registered format names in sorted order.
func Names() []string {
	out := make([]string, 0, len(codecs))
	for name := range codecs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
