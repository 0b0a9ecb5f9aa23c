// Command validate checks the calibration engine's invariants across every
// reference object, a spread of container heights and person heights: label
// table shape, the pixel round-trip law, reference scaling, activeLabel
// monotonicity and the person height clamp.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -containers 120,180,240,1080 \
//	  -person-heights 50,100,152,183,230,300 \
//	  -step 0.5
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/couchcryptid/flood-depth-service/internal/domain"
)

const tolerance = 1e-9

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

type options struct {
	containers    []float64
	personHeights []float64
	step          float64
}

func main() {
	containers := flag.String("containers", "120,180,240,480,1080", "comma-separated container heights in px")
	personHeights := flag.String("person-heights", "50,100,152,183,200,230,300", "comma-separated person heights in cm")
	step := flag.Float64("step", 0.5, "depth sampling step in cm")
	flag.Parse()

	opts, err := parseOptions(*containers, *personHeights, *step)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if code := run(os.Stdout, opts); code != 0 {
		os.Exit(code)
	}
}

func parseOptions(containers, personHeights string, step float64) (options, error) {
	c, err := parseList(containers)
	if err != nil {
		return options{}, fmt.Errorf("containers: %w", err)
	}
	h, err := parseList(personHeights)
	if err != nil {
		return options{}, fmt.Errorf("person-heights: %w", err)
	}
	if step <= 0 {
		return options{}, fmt.Errorf("step must be positive, got %g", step)
	}
	return options{containers: c, personHeights: h, step: step}, nil
}

func parseList(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", s)
	}
	return out, nil
}

func run(w io.Writer, opts options) int {
	fmt.Fprintln(w, "=== Flood Depth Calibration Validation ===")
	fmt.Fprintln(w)

	var configs []domain.Config
	for _, h := range opts.containers {
		cfg := domain.DefaultConfig().WithContainerHeight(h)
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(w, "  skipping container %gpx: %v\n", h, err)
			continue
		}
		configs = append(configs, cfg)
	}

	phases := []*phase{
		validateLabelTables(opts.personHeights),
		validateRoundTrip(configs, opts.step),
		validateReferenceScaling(configs, opts.personHeights),
		validateMonotonicity(opts.personHeights, opts.step),
		validatePersonClamp(opts.personHeights),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Checked: %d containers, %d reference objects, %d person heights\n",
		len(configs), len(domain.ReferenceObjects()), len(opts.personHeights))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(w, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(w, "\nValidation FAILED.")
	return 1
}

// ── Phase 1: Label tables ──
// Every table starts at the depth-0 sentinel and is strictly increasing.

func validateLabelTables(personHeights []float64) *phase {
	p := &phase{name: "Phase 1: Label Tables"}

	sets := []domain.ReferenceSet{domain.DefaultReferences()}
	for _, h := range personHeights {
		sets = append(sets, domain.DefaultReferences().WithPersonHeight(h))
	}

	for _, set := range sets {
		for _, r := range domain.ReferenceObjects() {
			checkTable(p, fmt.Sprintf("%s (person %d cm)", r, set.Person().HeightCm), set.Labels(r))
		}
	}
	return p
}

func checkTable(p *phase, name string, labels []domain.DepthLabel) {
	if len(labels) == 0 {
		p.errorf("%s: empty label table", name)
		return
	}
	if labels[0].Depth != 0 || labels[0].Label != domain.NoFloodLabel {
		p.errorf("%s: first tier is %+v, want depth 0 %q", name, labels[0], domain.NoFloodLabel)
	}
	if got := domain.ActiveLabel(0, labels); got != labels[0] {
		p.errorf("%s: activeLabel(0) = %+v, want sentinel", name, got)
	}
	for i := 1; i < len(labels); i++ {
		if labels[i].Depth <= labels[i-1].Depth {
			p.errorf("%s: tier %d depth %d not above tier %d depth %d",
				name, i, labels[i].Depth, i-1, labels[i-1].Depth)
		}
	}
}

// ── Phase 2: Round trip ──
// pixelsToCm(cmToPixels(cm)) == cm over the 2 m scale.

func validateRoundTrip(configs []domain.Config, step float64) *phase {
	p := &phase{name: "Phase 2: Pixel Round Trip"}

	for _, cfg := range configs {
		for cm := 0.0; cm <= cfg.ScaleMaxCm; cm += step {
			px := domain.CmToPixels(cm, cfg)
			if back := domain.PixelsToCm(px, cfg); math.Abs(back-cm) > tolerance {
				p.errorf("container %gpx: %g cm -> %g px -> %g cm", cfg.ContainerHeightPx, cm, px, back)
			}
		}
		if px := domain.CmToPixels(cfg.ScaleMaxCm, cfg); math.Abs(px-cfg.UsablePx()) > tolerance {
			p.errorf("container %gpx: full scale maps to %g px, want %g", cfg.ContainerHeightPx, px, cfg.UsablePx())
		}
	}
	return p
}

// ── Phase 3: Reference scaling ──
// Silhouettes share the water's coordinate system.

func validateReferenceScaling(configs []domain.Config, personHeights []float64) *phase {
	p := &phase{name: "Phase 3: Reference Scaling"}

	for _, cfg := range configs {
		for _, r := range domain.ReferenceObjects() {
			want := domain.CmToPixels(domain.DefaultReferences().RealHeightCm(r), cfg)
			if got := domain.ScaleReferenceHeight(r, cfg); math.Abs(got-want) > tolerance {
				p.errorf("container %gpx %s: scaled %g px, want %g", cfg.ContainerHeightPx, r, got, want)
			}
		}
		for _, h := range personHeights {
			set := domain.DefaultReferences().WithPersonHeight(h)
			want := domain.CmToPixels(float64(domain.ClampPersonHeight(h)), cfg)
			if got := set.ScaleHeight(domain.Person, cfg); math.Abs(got-want) > tolerance {
				p.errorf("container %gpx person %g cm: scaled %g px, want %g", cfg.ContainerHeightPx, h, got, want)
			}
		}
	}
	return p
}

// ── Phase 4: Monotonicity ──
// Deeper water never selects a shallower tier.

func validateMonotonicity(personHeights []float64, step float64) *phase {
	p := &phase{name: "Phase 4: Active Label Monotonicity"}

	for _, h := range personHeights {
		set := domain.DefaultReferences().WithPersonHeight(h)
		for _, r := range domain.ReferenceObjects() {
			labels := set.Labels(r)
			prev := -1
			for d := 0.0; d <= domain.PersonMaxHeightCm+step; d += step {
				got := domain.ActiveLabel(d, labels).Depth
				if got < prev {
					p.errorf("%s (person %g cm): depth %g cm selects tier %d after tier %d", r, h, d, got, prev)
					break
				}
				prev = got
			}
		}
	}
	return p
}

// ── Phase 5: Person clamp ──
// Heights outside 100–230 cm behave exactly like the nearest bound.

func validatePersonClamp(personHeights []float64) *phase {
	p := &phase{name: "Phase 5: Person Height Clamp"}

	for _, h := range personHeights {
		bound := max(float64(domain.PersonMinHeightCm), min(float64(domain.PersonMaxHeightCm), math.Round(h)))
		if !slices.Equal(domain.RecalibratePersonLabels(h), domain.RecalibratePersonLabels(bound)) {
			p.errorf("person %g cm: labels differ from clamped %g cm", h, bound)
		}
	}

	baseline := domain.RecalibratePersonLabels(domain.PersonBaselineCm)
	wantDepths := []int{0, 25, 45, 75, 100, 135, 155, domain.PersonBaselineCm}
	gotDepths := make([]int, len(baseline))
	for i, l := range baseline {
		gotDepths[i] = l.Depth
	}
	if !slices.Equal(gotDepths, wantDepths) {
		p.errorf("baseline thresholds %v, want %v", gotDepths, wantDepths)
	}
	return p
}
