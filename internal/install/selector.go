package install

import (
	"sync"

	"github.com/runtimedeps/cli/internal/catalog"
	"github.com/runtimedeps/cli/internal/output"
	"github.com/runtimedeps/cli/internal/platform"
)

// Selector filters a catalog down to the components that are compatible
// with a target and have no install marker on disk.
type Selector struct {
	root   string
	prober Prober
}

// NewSelector creates a Selector that resolves install paths against root.
// A nil prober defaults to the filesystem LockProber.
func NewSelector(root string, prober Prober) *Selector {
	if prober == nil {
		prober = LockProber{}
	}
	return &Selector{root: root, prober: prober}
}

// probeResult carries one probe outcome back to the collection loop. The
// index refers to the matched slice, which is never reordered, so results
// may arrive in any order without losing their component.
type probeResult struct {
	index     int
	installed bool
}

// Select returns the components that are compatible with target and not
// yet installed, preserving catalog order. Duplicate catalog entries are
// kept as-is; deduplication is the caller's responsibility.
//
// The compatibility pass is synchronous; the install probes fan out one
// goroutine per surviving component. Fan-out is unbounded because catalogs
// are tens of entries. Every probe runs to completion before a result is
// produced; callers wanting a timeout wrap the whole call.
func (s *Selector) Select(components []catalog.Component, target platform.Target) []catalog.Component {
	matched := s.match(components, target)
	if len(matched) == 0 {
		return nil
	}

	installed := s.probeAll(matched)

	selected := make([]catalog.Component, 0, len(matched))
	for i, rc := range matched {
		if installed[i] {
			output.Debug("component already installed",
				"component", rc.Component.Description,
				"dir", rc.InstallDir,
			)
			continue
		}
		selected = append(selected, rc.Component)
	}

	output.Debug("selection complete",
		"catalog", len(components),
		"compatible", len(matched),
		"pending", len(selected),
	)

	return selected
}

// Status describes one catalog entry's disposition against a target.
type Status struct {
	Component  catalog.Component
	Compatible bool

	// Installed is only meaningful when Compatible is true; incompatible
	// components are never probed.
	Installed bool
}

// Inspect reports the disposition of every catalog entry against target,
// in catalog order. It shares the probe fan-out with Select.
func (s *Selector) Inspect(components []catalog.Component, target platform.Target) []Status {
	statuses := make([]Status, len(components))

	var matched []ResolvedComponent
	var matchedAt []int
	for i, c := range components {
		statuses[i] = Status{Component: c}
		if !platform.Compatible(c, target) {
			continue
		}
		statuses[i].Compatible = true
		matched = append(matched, ResolvedComponent{
			Component:  c,
			InstallDir: ResolveInstallDir(s.root, c.InstallPath),
		})
		matchedAt = append(matchedAt, i)
	}

	if len(matched) == 0 {
		return statuses
	}

	installed := s.probeAll(matched)
	for j, i := range matchedAt {
		statuses[i].Installed = installed[j]
	}

	return statuses
}

// match runs the synchronous compatibility pass and resolves install
// directories for the survivors. Output order matches catalog order.
func (s *Selector) match(components []catalog.Component, target platform.Target) []ResolvedComponent {
	var matched []ResolvedComponent
	for _, c := range components {
		if !platform.Compatible(c, target) {
			continue
		}
		matched = append(matched, ResolvedComponent{
			Component:  c,
			InstallDir: ResolveInstallDir(s.root, c.InstallPath),
		})
	}
	return matched
}

// probeAll probes every resolved component concurrently and returns the
// outcomes indexed like the input slice.
func (s *Selector) probeAll(matched []ResolvedComponent) []bool {
	resultCh := make(chan probeResult, len(matched))
	var wg sync.WaitGroup

	for i, rc := range matched {
		wg.Add(1)
		go func(i int, dir string) {
			defer wg.Done()
			resultCh <- probeResult{index: i, installed: s.prober.Installed(dir)}
		}(i, rc.InstallDir)
	}

	// Close channel when all probes complete
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	installed := make([]bool, len(matched))
	for r := range resultCh {
		installed[r.index] = r.installed
	}

	return installed
}
