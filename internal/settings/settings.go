// Package settings feeds desktop configuration into the decoration: button
// layout, color scheme and titlebar font. The primary source is the desktop
// settings portal on the session bus; a YAML file source covers environments
// without a portal.
package settings

// Well-known setting groups and keys, matching the desktop portal namespace.
const (
	GroupWMPreferences = "org.gnome.desktop.wm.preferences"
	GroupAppearance    = "org.freedesktop.appearance"

	KeyButtonLayout = "button-layout"
	KeyColorScheme  = "color-scheme"
	KeyTitlebarFont = "titlebar-font"
)

// Snapshot is a point-in-time read of settings, keyed by group then key.
// Values keep the source's dynamic type; consumers coerce defensively and
// drop what they cannot use.
type Snapshot map[string]map[string]interface{}

// Get returns the value under group/key, or nil when absent.
func (s Snapshot) Get(group, key string) interface{} {
	return s[group][key]
}

// Source is a provider of desktop settings. ReadAll may block and is meant
// to be called off the event loop; Subscribe callbacks arrive on a source
// goroutine and the consumer is responsible for rescheduling them.
type Source interface {
	// ReadAll fetches the current values of the given groups.
	ReadAll(groups []string) (Snapshot, error)

	// Subscribe registers fn for change notifications. Sources without
	// change notification return nil and never call fn.
	Subscribe(fn func(group, key string, value interface{})) error

	// Close releases the source's resources.
	Close() error
}
