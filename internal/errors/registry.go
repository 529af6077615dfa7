package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://vango.dev/docs/mount/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Hydration (E040-E049)
	"E040": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch",
		Detail:   "The existing markup does not match what the component rendered. The target will be cleared and mounted from scratch.",
		DocURL:   docBase + "E040",
	},
	"E041": {
		Category: CategoryHydration,
		Message:  "Hydration failed",
		Detail:   "The existing markup did not match the component and recovery was disabled.",
		DocURL:   docBase + "E041",
	},
	"E042": {
		Category: CategoryHydration,
		Message:  "Hydration start marker not found",
		Detail:   "None of the target's children is a <!--[--> comment, so there is no server-rendered markup to hydrate.",
		DocURL:   docBase + "E042",
	},

	// Lifecycle (E050-E059)
	"E050": {
		Category: CategoryLifecycle,
		Message:  "Component unmounted twice",
		Detail:   "Unmount was called with an instance that is not mounted. It was either never returned by Mount/Hydrate or has already been unmounted.",
		DocURL:   docBase + "E050",
	},

	// Host (E060-E069)
	"E060": {
		Category: CategoryHost,
		Message:  "Invalid mount target",
		Detail:   "Mount and Hydrate need a target node to render into.",
		DocURL:   docBase + "E060",
	},

	// Config (E070-E079)
	"E070": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be read or failed validation.",
		DocURL:   docBase + "E070",
	},
}

// Lookup returns the template for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
