// Package errors provides coded, structured errors for vmount.
//
// Each error carries a code that maps to a registered template with a short
// message, a longer explanation and a documentation link:
//
//	err := errors.New("E041").
//	    Wrap(mismatch).
//	    WithSuggestion("Render the markup with render.Markup so it carries <!--[--> and <!--]--> markers")
//
//	fmt.Println(err.Format())
//	// ERROR E041: Hydration failed
//	//
//	//   The existing markup did not match the component and recovery was disabled.
//	//
//	//   Hint: Render the markup with render.Markup so it carries <!--[--> and <!--]--> markers
//	//
//	//   Learn more: https://vango.dev/docs/mount/errors/E041
//
// # Categories
//
//   - hydration: markup could not be matched against a component
//   - lifecycle: mount and unmount misuse
//   - host: invalid host tree input
//   - config: configuration file problems
package errors
