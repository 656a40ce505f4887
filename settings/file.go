package settings

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"

	"github.com/K4zuy4/BattlePong-7/events"
)

// NewFromFile creates a store whose defaults are the built-ins overlaid
// with a yaml defaults file. File values pass through the same per-key
// validation as runtime patches; invalid entries are reported and the
// built-in default kept. A missing file is not an error.
//
// Note this only shifts the startup baseline. Runtime mutation still
// goes through Patch, and Reset returns to the overlaid defaults.
func NewFromFile(path string, bus *events.Bus, reporter events.Reporter) (*Store, error) {
	s := New(bus, reporter)
	if path == "" {
		return s, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, oops.
			Code("SETTINGS_FILE_INVALID").
			With("path", path).
			Wrap(err)
	}

	staged := s.defaults.clone()
	for section, values := range k.Raw() {
		sectionValues, ok := values.(map[string]any)
		if !ok {
			s.reporter.Report(oops.
				Code("SETTINGS_FILE_INVALID").
				With("path", path).
				With("section", section).
				Errorf("section is not a mapping"))
			continue
		}
		for key, value := range sectionValues {
			if _, err := applyKey(&staged, section, key, value); err != nil {
				s.reporter.Report(oops.
					Code("SETTINGS_INVALID_PATCH").
					With("path", path).
					With("section", section).
					With("key", key).
					With("value", value).
					Wrap(err))
			}
		}
	}

	s.mu.Lock()
	s.defaults = staged
	s.cur = staged.clone()
	s.mu.Unlock()
	return s, nil
}
