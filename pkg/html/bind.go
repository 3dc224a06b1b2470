package html

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"scalepage/pkg/scale"
)

// ScaleConfig resolves the container selectors of o against the document
// and returns a config whose surfaces are DOM elements. A missing
// container is an error; a missing positioning target only disables
// centering.
func (d *Document) ScaleConfig(o scale.Options) (scale.Config, error) {
	cfg := o.Config()

	container := d.Query(o.ContainerSelector())
	if container == nil {
		return cfg, fmt.Errorf("container %q: %w", o.ContainerSelector(), scale.ErrNoSurface)
	}
	cfg.Surface = container

	if target := d.Query(o.TargetSelector()); target != nil {
		cfg.Target = target
	} else {
		log.Warn().Str("module", "html").Str("selector", o.TargetSelector()).
			Msg("Positioning target not found")
	}

	cfg.Overlay = NewOverlay(d)
	return cfg, cfg.Validate()
}
