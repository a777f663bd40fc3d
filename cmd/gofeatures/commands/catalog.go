package commands

import (
	"io"

	"github.com/sankarpadhy/go-release-highlights/go118"
	"github.com/sankarpadhy/go-release-highlights/go120"
	"github.com/sankarpadhy/go-release-highlights/go121"
	"github.com/sankarpadhy/go-release-highlights/go122"
	"github.com/sankarpadhy/go-release-highlights/go123"
	"github.com/sankarpadhy/go-release-highlights/go124"
	"github.com/sankarpadhy/go-release-highlights/httpclient"
	"github.com/sankarpadhy/go-release-highlights/internal/config"
	"github.com/sankarpadhy/go-release-highlights/internal/registry"
)

// newCatalogue registers every demo in release order. Adding a sample means
// adding one entry here. The chat and weather demos honor the configured
// base URLs; everything else is self-contained.
func newCatalogue(cfg *config.Config) *registry.Registry {
	r := registry.New()
	r.MustRegister(
		registry.Demo{Name: "generics", Release: "go1.18", Synopsis: "type parameters: Map/Filter/Reduce and a generic Stack", Run: go118.DemoGenerics},
		registry.Demo{Name: "optional", Release: "go1.18", Synopsis: "a generic value-or-absent holder with lazy fallback", Run: go118.DemoOptional},
		registry.Demo{Name: "any", Release: "go1.18", Synopsis: "the any alias and type switches", Run: go118.DemoAny},

		registry.Demo{Name: "multierror", Release: "go1.20", Synopsis: "errors.Join and multi-%w wrapping", Run: go120.DemoMultiError},
		registry.Demo{Name: "cancelcause", Release: "go1.20", Synopsis: "context.WithCancelCause and context.Cause", Run: go120.DemoCancelCause},

		registry.Demo{Name: "slices", Release: "go1.21", Synopsis: "the slices package: sort, search, dedupe, edit", Run: go121.DemoSlices},
		registry.Demo{Name: "maps", Release: "go1.21", Synopsis: "the maps package plus clear/min/max builtins", Run: go121.DemoMaps},
		registry.Demo{Name: "slog", Release: "go1.21", Synopsis: "structured logging with log/slog", Run: go121.DemoSlog},

		registry.Demo{Name: "randv2", Release: "go1.22", Synopsis: "math/rand/v2 sources, IntN and generic N", Run: go122.DemoRandV2},
		registry.Demo{Name: "rangeint", Release: "go1.22", Synopsis: "range over integers and per-iteration loop vars", Run: go122.DemoRangeInt},
		registry.Demo{Name: "muxpatterns", Release: "go1.22", Synopsis: "ServeMux method and wildcard patterns", Run: go122.DemoMuxPatterns},

		registry.Demo{Name: "iterators", Release: "go1.23", Synopsis: "range-over-func and the iter package", Run: go123.DemoIterators},
		registry.Demo{Name: "unique", Release: "go1.23", Synopsis: "canonical handles with the unique package", Run: go123.DemoUnique},
		registry.Demo{Name: "timers", Release: "go1.23", Synopsis: "the reworked time.Timer semantics", Run: go123.DemoTimers},

		registry.Demo{Name: "aliases", Release: "go1.24", Synopsis: "generic type aliases", Run: go124.DemoGenericAliases},
		registry.Demo{Name: "stringseq", Release: "go1.24", Synopsis: "strings.Lines, SplitSeq and FieldsSeq", Run: go124.DemoStringSeq},
		registry.Demo{Name: "omitzero", Release: "go1.24", Synopsis: "the encoding/json omitzero tag", Run: go124.DemoOmitZero},

		registry.Demo{Name: "chat", Release: "stdlib", Synopsis: "a thin chat-service wrapper over net/http", Run: func(w io.Writer) error {
			return httpclient.DemoChatAgainst(w, cfg.ChatBaseURL)
		}},
		registry.Demo{Name: "weather", Release: "stdlib", Synopsis: "a weather-service wrapper with an async call", Run: func(w io.Writer) error {
			return httpclient.DemoWeatherAgainst(w, cfg.WeatherBaseURL)
		}},
	)
	return r
}
