package loader

import (
	"errors"

	"github.com/tidwall/gjson"
)

var errNotObject = errors.New("top-level value must be an object")

// decodeJSON validates with gjson before materializing the document, so
// malformed input never reaches the decoder.
func decodeJSON(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Message: "invalid JSON"}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &ParseError{Message: errNotObject.Error(), Err: errNotObject}
	}

	doc, _ := root.Value().(map[string]any)
	return doc, nil
}
