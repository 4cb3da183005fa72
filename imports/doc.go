// Package imports suggests import statements for identifiers, resolved
// against a fixed module graph built by statically scanning Go source
// trees.
//
// The graph is explicit and reproducible: Scan walks a directory tree,
// parses every non-test .go file, and records each package's exported
// top-level declarations plus alias bindings (var X = Y, type X = Y).
// Suggest then answers "where would I import NAME from?" with a
// deterministic heuristic:
//
//  1. a package whose name or import path equals NAME wins outright
//     (import the package itself);
//  2. otherwise packages declaring NAME are ranked — non-aggregator
//     packages first (an aggregator re-exports names, e.g. a path ending
//     in "all"), then deeper import paths, ties broken alphabetically;
//  3. if the winning binding is an alias, the suggestion stands but the
//     aliased original is reported in the warnings;
//  4. several candidates produce a warning listing them; the top-ranked
//     one is still picked (best-effort, never silently wrong — at worst
//     suboptimal);
//  5. no candidate at all yields ErrNoImport.
//
// Usage:
//
//	g, _ := imports.Scan("path/to/repo", &imports.ScanOptions{ModulePath: "example.com/repo"})
//	st, warns, err := imports.Suggest(g, "Widget", nil)
//	fmt.Println(st.Render()) // import "example.com/repo/widgets"
//
// Warnings are returned, not printed; callers choose the sink. The
// heuristic is intentionally best-effort: it ranks plausible answers, it
// does not prove uniqueness.
package imports
