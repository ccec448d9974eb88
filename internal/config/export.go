package config

import (
	"fmt"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/agent"
)

// Export writes the sensitivities and every binding of a as indented
// JSON. The document sets clear, so loading and applying it reproduces
// the exported profiles. Wheel entries whose action has no one-axis form
// cannot be expressed and are skipped.
func Export(a *agent.Agent) ([]byte, error) {
	doc := []byte(`{}`)

	set := func(path string, value any) error {
		var err error
		doc, err = sjson.SetBytes(doc, path, value)
		if err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		return nil
	}

	if err := set("clear", true); err != nil {
		return nil, err
	}
	if err := set("sensitivity.x", a.XSensitivity()); err != nil {
		return nil, err
	}
	if err := set("sensitivity.y", a.YSensitivity()); err != nil {
		return nil, err
	}
	// An empty profile still exports an empty list
	if err := set("bindings", []any{}); err != nil {
		return nil, err
	}

	i := 0
	for _, t := range action.Targets {
		for _, b := range a.Bindings(t) {
			if b.Kind == agent.KindWheel {
				if _, ok := b.Action.(action.DOF1Action); !ok {
					continue
				}
			}

			prefix := fmt.Sprintf("bindings.%d.", i)
			if err := set(prefix+"target", t.String()); err != nil {
				return nil, err
			}
			if err := set(prefix+"shortcut", b.Shortcut.String()); err != nil {
				return nil, err
			}
			if b.Kind == agent.KindClick {
				if err := set(prefix+"clicks", b.Clicks); err != nil {
					return nil, err
				}
			}
			if err := set(prefix+"action", b.Action.String()); err != nil {
				return nil, err
			}
			i++
		}
	}

	return pretty.Pretty(doc), nil
}
