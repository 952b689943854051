// Package style derives render-ready presentation values from settings.
//
// [Derive] is a pure function: the same [settings.Settings] always yields
// the same [Derived] and nothing else is read or written. Values are
// expressed as CSS tokens ("18px", "68ch", "0.05em") so they can be shown
// to the user verbatim, printed as a stylesheet, or mapped onto terminal
// cells by package preview.
//
//	d := style.Derive(store.Snapshot())
//	fmt.Println(d.CSS(".preview"))
package style
