package defs

// Theme stylesheet selectors and locations. The paths are relative to
// StylesDir inside the project and are kept verbatim.
const (
	// DefaultCSS is the default output filename for generated variables.
	DefaultCSS = "variables.css"

	// Root is the selector holding the light theme.
	Root = ":root"
	// RootPath is the light theme stylesheet.
	RootPath = "../../src/theme/styles/light.css"

	// BodyDark is the selector holding the dark theme.
	BodyDark = "body.dark"
	// DarkCSSPath is the dark theme stylesheet.
	DarkCSSPath = "../../src/theme/styles/dark.css"

	// BodyDarkIOS is the selector holding the iOS dark overrides.
	BodyDarkIOS = ".ios body.dark"
	// DarkIOSCSSPath is the iOS dark theme stylesheet.
	DarkIOSCSSPath = "../../src/theme/styles/ios.css"

	// BodyDarkMD is the selector holding the Material dark overrides.
	BodyDarkMD = ".md body.dark"
	// DarkMDCSSPath is the Material dark theme stylesheet.
	DarkMDCSSPath = "../../src/theme/styles/md.css"

	// StylesDir is the project directory the stylesheet paths above are anchored to.
	StylesDir = "scripts/styles"
)

// Generated file names.
const (
	// TailwindConfigJS is the default output filename for the tailwind format.
	TailwindConfigJS = "tailwind.config.js"
)

// Theme names as they appear under daisyui.themes.
const (
	ThemeLight   = "light"
	ThemeDark    = "dark"
	ThemeDarkIOS = "dark_ios"
	ThemeDarkMD  = "dark_md"
)

// Directory names.
const (
	// ConfigDir is the per-project configuration directory.
	ConfigDir = ".themeport"

	// SectionsSubdir holds the YAML section files inside ConfigDir.
	SectionsSubdir = "sections"
)

// Section YAML file names under .themeport/sections/.
const (
	SourcesYAML = "sources.yaml"
	OutputYAML  = "output.yaml"
	SystemYAML  = "system.yaml"
)
