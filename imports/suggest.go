package imports

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Statement is a resolved import suggestion: which package to import and,
// for non-package objects, which identifier to qualify.
type Statement struct {
	// Path is the import path of the suggested package.
	Path string

	// PackageName is the package clause name, used for qualification.
	PackageName string

	// Name is the identifier to reference; empty when the suggestion is
	// the package itself.
	Name string
}

// Render returns the Go import clause for the suggestion.
func (s Statement) Render() string {
	return fmt.Sprintf("import %q", s.Path)
}

// RenderAliased returns the import clause bound to the given local alias.
func (s Statement) RenderAliased(alias string) string {
	return fmt.Sprintf("import %s %q", alias, s.Path)
}

// Qualified returns the qualified reference ("pkg.Name"), or the package
// name alone for package suggestions.
func (s Statement) Qualified() string {
	if s.Name == "" {
		return s.PackageName
	}
	return s.PackageName + "." + s.Name
}

// Options configures Suggest.
type Options struct {
	// Aggregators lists final path elements marking re-export packages,
	// deprioritized during ranking. Default: {"all"}.
	Aggregators []string

	// MaxListed caps how many candidate paths an ambiguity warning names
	// before eliding the rest. Default: 4.
	MaxListed int
}

// DefaultOptions returns the options Suggest uses when passed nil.
func DefaultOptions() Options {
	return Options{Aggregators: []string{"all"}, MaxListed: 4}
}

// Suggest resolves name against the module graph and returns the best
// import statement plus any heuristic warnings. The pick is deterministic:
// package matches first, then declaring packages ranked non-aggregator
// first, deeper paths first, alphabetical last.
//
// Errors:
//   - ErrEmptyGraph — g is nil or holds no packages.
//   - ErrNoImport   — nothing in the graph binds name.
func Suggest(g *Graph, name string, opts *Options) (Statement, []string, error) {
	o := DefaultOptions()
	if opts != nil {
		if opts.Aggregators != nil {
			o.Aggregators = opts.Aggregators
		}
		if opts.MaxListed > 0 {
			o.MaxListed = opts.MaxListed
		}
	}
	if g.Len() == 0 {
		return Statement{}, nil, ErrEmptyGraph
	}

	// Case 1: name is a package (by import path or package clause name).
	if pkg, ok := g.Package(name); ok {
		return Statement{Path: pkg.ImportPath, PackageName: pkg.Name}, nil, nil
	}
	for _, p := range g.Paths() {
		pkg, _ := g.Package(p)
		if pkg.Name == name || path.Base(pkg.ImportPath) == name {
			return Statement{Path: pkg.ImportPath, PackageName: pkg.Name}, nil, nil
		}
	}

	// Case 2: packages declaring name.
	var candidates []*Package
	for _, p := range g.Paths() {
		pkg, _ := g.Package(p)
		if _, ok := pkg.Decls[name]; ok {
			candidates = append(candidates, pkg)
		}
	}
	if len(candidates) == 0 {
		return Statement{}, nil, fmt.Errorf("%w for %s", ErrNoImport, name)
	}

	rankCandidates(candidates, o.Aggregators)

	var warnings []string
	if len(candidates) > 1 {
		warnings = append(warnings, ambiguityWarning(candidates, o.MaxListed))
	}

	best := candidates[0]
	if isAggregator(best, o.Aggregators) {
		warnings = append(warnings, fmt.Sprintf("%s only exists in aggregator packages", name))
	}
	if target, ok := best.Aliases[name]; ok {
		warnings = append(warnings, fmt.Sprintf("%q seems to be an alias for %q defined in %s", name, target, best.ImportPath))
	}

	return Statement{Path: best.ImportPath, PackageName: best.Name, Name: name}, warnings, nil
}

// isAggregator reports whether the package's final path element is one of
// the configured aggregator names.
func isAggregator(p *Package, aggregators []string) bool {
	last := path.Base(p.ImportPath)
	for _, a := range aggregators {
		if last == a {
			return true
		}
	}
	return false
}

// rankCandidates orders packages in place: non-aggregators first, then
// deeper (more specific) paths, then alphabetically.
func rankCandidates(pkgs []*Package, aggregators []string) {
	sort.SliceStable(pkgs, func(i, j int) bool {
		ai, aj := isAggregator(pkgs[i], aggregators), isAggregator(pkgs[j], aggregators)
		if ai != aj {
			return !ai
		}
		if di, dj := pkgs[i].Depth(), pkgs[j].Depth(); di != dj {
			return di > dj
		}
		return pkgs[i].ImportPath < pkgs[j].ImportPath
	})
}

// ambiguityWarning lists the competing candidate paths, eliding past max.
func ambiguityWarning(pkgs []*Package, max int) string {
	paths := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		paths = append(paths, p.ImportPath)
	}
	suffix := ""
	if len(paths) > max {
		paths = paths[:max]
		suffix = ", ..."
	}
	return "several packages for that object: " + strings.Join(paths, ", ") + suffix
}
