package imports

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// DeclKind classifies a top-level binding.
type DeclKind int

const (
	// KindFunc is a top-level function declaration.
	KindFunc DeclKind = iota

	// KindType is a type declaration.
	KindType

	// KindVar is a package-level variable.
	KindVar

	// KindConst is a package-level constant.
	KindConst
)

// String names the kind for display.
func (k DeclKind) String() string {
	switch k {
	case KindFunc:
		return "func"
	case KindType:
		return "type"
	case KindVar:
		return "var"
	case KindConst:
		return "const"
	default:
		return "unknown"
	}
}

// Package is one scanned package in the module graph.
type Package struct {
	// ImportPath is the full import path (ModulePath + relative directory).
	ImportPath string

	// Name is the package clause name.
	Name string

	// Decls maps each exported top-level name to its kind.
	Decls map[string]DeclKind

	// Aliases maps an exported name to the identifier it aliases
	// (var X = Y, type X = Y). Alias names also appear in Decls.
	Aliases map[string]string
}

// Depth returns the number of path segments, the specificity measure used
// when ranking candidates.
func (p *Package) Depth() int { return strings.Count(p.ImportPath, "/") + 1 }

// Graph is a fixed module graph: the set of scanned packages, keyed by
// import path. Build one with Scan; immutable afterwards.
type Graph struct {
	pkgs map[string]*Package
}

// Len returns the number of packages in the graph.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.pkgs)
}

// Package returns the scanned package with the given import path.
func (g *Graph) Package(importPath string) (*Package, bool) {
	if g == nil {
		return nil, false
	}
	p, ok := g.pkgs[importPath]
	return p, ok
}

// Paths returns all import paths in the graph, sorted.
func (g *Graph) Paths() []string {
	if g == nil {
		return nil
	}
	paths := make([]string, 0, len(g.pkgs))
	for p := range g.pkgs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// ScanOptions configures Scan.
type ScanOptions struct {
	// ModulePath is prefixed to each package's directory-relative path to
	// form its import path. Empty means the relative path alone.
	ModulePath string

	// SkipDirs lists directory names to prune. Defaults to vendor,
	// testdata, and anything starting with "." or "_".
	SkipDirs []string
}

// DefaultScanOptions returns the options Scan uses when passed nil.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{SkipDirs: []string{"vendor", "testdata"}}
}

// Scan builds the module graph for the Go source tree rooted at root.
// Test files (_test.go) are ignored; files that fail to parse are skipped
// (best-effort, the rest of their package still contributes).
//
// Errors: ErrBadRoot when root cannot be read.
func Scan(root string, opts *ScanOptions) (*Graph, error) {
	o := DefaultScanOptions()
	if opts != nil {
		o.ModulePath = opts.ModulePath
		if opts.SkipDirs != nil {
			o.SkipDirs = opts.SkipDirs
		}
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrBadRoot, root)
	}

	skip := make(map[string]struct{}, len(o.SkipDirs))
	for _, d := range o.SkipDirs {
		skip[d] = struct{}{}
	}

	g := &Graph{pkgs: make(map[string]*Package)}
	fset := token.NewFileSet()

	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		base := d.Name()
		if d.IsDir() {
			if p == root {
				return nil
			}
			if _, ok := skip[base]; ok || strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(base, ".go") || strings.HasSuffix(base, "_test.go") {
			return nil
		}

		file, perr := parser.ParseFile(fset, p, nil, parser.SkipObjectResolution)
		if perr != nil {
			return nil // unparsable file, skip
		}

		rel, rerr := filepath.Rel(root, filepath.Dir(p))
		if rerr != nil {
			return rerr
		}
		var importPath string
		if o.ModulePath != "" {
			importPath = path.Join(o.ModulePath, filepath.ToSlash(rel))
		} else if importPath = filepath.ToSlash(rel); importPath == "." {
			importPath = path.Base(filepath.ToSlash(root))
		}

		pkg, ok := g.pkgs[importPath]
		if !ok {
			pkg = &Package{
				ImportPath: importPath,
				Name:       file.Name.Name,
				Decls:      make(map[string]DeclKind),
				Aliases:    make(map[string]string),
			}
			g.pkgs[importPath] = pkg
		}
		collectDecls(pkg, file)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("imports: scan failed: %w", walkErr)
	}
	return g, nil
}

// collectDecls records the exported top-level bindings of one file.
func collectDecls(pkg *Package, file *ast.File) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil && d.Name.IsExported() {
				pkg.Decls[d.Name.Name] = KindFunc
			}
		case *ast.GenDecl:
			switch d.Tok {
			case token.TYPE:
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok || !ts.Name.IsExported() {
						continue
					}
					pkg.Decls[ts.Name.Name] = KindType
					if ts.Assign != token.NoPos {
						if target, ok := identName(ts.Type); ok {
							pkg.Aliases[ts.Name.Name] = target
						}
					}
				}
			case token.VAR, token.CONST:
				kind := KindVar
				if d.Tok == token.CONST {
					kind = KindConst
				}
				for _, spec := range d.Specs {
					vs, ok := spec.(*ast.ValueSpec)
					if !ok {
						continue
					}
					for i, name := range vs.Names {
						if !name.IsExported() {
							continue
						}
						pkg.Decls[name.Name] = kind
						if i < len(vs.Values) {
							if target, ok := identName(vs.Values[i]); ok && target != name.Name {
								pkg.Aliases[name.Name] = target
							}
						}
					}
				}
			}
		}
	}
}

// identName extracts a bare or selector identifier from an expression,
// the only right-hand shapes treated as alias bindings.
func identName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, true
	case *ast.SelectorExpr:
		if x, ok := e.X.(*ast.Ident); ok {
			return x.Name + "." + e.Sel.Name, true
		}
	}
	return "", false
}
