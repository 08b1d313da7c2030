package preset

import (
	"strings"

	"github.com/rs/zerolog/log"
)

func (ps Presets) TransformBeforeValidation(registry *Registry, dir string) error {
	for i := range ps {
		p := &ps[i]
		p.Name = strings.TrimSpace(p.Name)
		p.Resolved = ""
		resolved, err := registry.Resolve(p.Name, dir)
		if err != nil {
			log.Logger.Debug().Err(err).Str("preset", p.Name).Msg("preset not resolved")
			continue
		}
		p.Resolved = resolved
	}
	return nil
}
