package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// decodeTOML reports the position of syntax errors when go-toml knows it.
func decodeTOML(data []byte) (map[string]any, error) {
	var doc map[string]any
	err := toml.Unmarshal(data, &doc)
	if err == nil {
		return doc, nil
	}

	pe := &ParseError{Message: err.Error(), Err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
	}
	return nil, pe
}
