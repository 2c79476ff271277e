package gen

import (
	"os"
	"sort"
	"strings"

	"github.com/teranos/iconforge/errors"
	"github.com/teranos/iconforge/naming"
)

// manifestFileName is the aggregating module written next to the
// per-collection files.
const manifestFileName = "mod.rs"

// manifestFixedContent is the shared IconData type and the Icon render
// component compiled into the host application. Rewritten wholesale by
// ForceRegenerate so definition changes reach existing projects.
const manifestFixedContent = `use dioxus::prelude::*;

/// Normalized icon data for one generated icon.
#[derive(Debug, Clone, Copy, PartialEq)]
pub struct IconData {
    pub name: &'static str,
    pub body: &'static str,
    pub width: u32,
    pub height: u32,
    pub view_box: &'static str,
}

/// Renders an icon. ` + "`size`" + ` overrides both dimensions; explicit
/// ` + "`width`" + `/` + "`height`" + ` take precedence over ` + "`size`" + `.
#[component]
pub fn Icon(
    data: IconData,
    #[props(optional)] size: Option<String>,
    #[props(optional)] width: Option<String>,
    #[props(optional)] height: Option<String>,
) -> Element {
    let w = width.or_else(|| size.clone()).unwrap_or_else(|| data.width.to_string());
    let h = height.or(size).unwrap_or_else(|| data.height.to_string());
    rsx! {
        svg {
            xmlns: "http://www.w3.org/2000/svg",
            width: "{w}",
            height: "{h}",
            view_box: "{data.view_box}",
            dangerous_inner_html: "{data.body}",
        }
    }
}
`

// EnsureInitialized creates the manifest with the fixed shared-type and
// render content if it is absent; existing manifests are left untouched.
func (g *Generator) EnsureInitialized() error {
	if err := g.ensureOutputDir(); err != nil {
		return err
	}

	path := g.join(manifestFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(errors.ErrFilesystem, "checking %s: %v", path, err)
	}

	g.log.Debugw("creating manifest", "path", path)
	return writeFileAtomic(path, []byte(renderManifest(nil)))
}

// Register adds a module declaration for the collection to the manifest if
// not already declared. Idempotent.
func (g *Generator) Register(collection string) error {
	if err := g.EnsureInitialized(); err != nil {
		return err
	}

	moduleName := naming.ModuleName(collection)

	modules, err := g.registeredModules()
	if err != nil {
		return err
	}
	for _, existing := range modules {
		if existing == moduleName {
			return nil
		}
	}

	modules = append(modules, moduleName)
	return writeFileAtomic(g.join(manifestFileName), []byte(renderManifest(modules)))
}

// ForceRegenerate rewrites the manifest's fixed content wholesale while
// preserving every registered collection. The update flow calls this so
// IconData/Icon definition changes propagate.
func (g *Generator) ForceRegenerate() error {
	if err := g.ensureOutputDir(); err != nil {
		return err
	}

	modules, err := g.registeredModules()
	if err != nil {
		return err
	}

	g.log.Debugw("regenerating manifest", "modules", len(modules))
	return writeFileAtomic(g.join(manifestFileName), []byte(renderManifest(modules)))
}

// registeredModules parses "pub mod <name>;" declarations out of the
// existing manifest. A missing manifest yields none.
func (g *Generator) registeredModules() ([]string, error) {
	data, err := os.ReadFile(g.join(manifestFileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFilesystem, "reading manifest: %v", err)
	}

	var modules []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "pub mod ") || !strings.HasSuffix(trimmed, ";") {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(trimmed, "pub mod "), ";")
		modules = append(modules, strings.TrimSpace(name))
	}
	return modules, nil
}

// renderManifest serializes the manifest: header, sorted module
// declarations, then the fixed content.
func renderManifest(modules []string) string {
	sort.Strings(modules)

	var sb strings.Builder
	sb.WriteString(generatedHeader + "\n\n")

	for _, module := range modules {
		sb.WriteString("pub mod " + module + ";\n")
	}
	if len(modules) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(manifestFixedContent)
	return sb.String()
}
