package settings

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	portalService   = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Settings"
	settingChanged  = "SettingChanged"
)

// PortalSource reads settings from the desktop portal over the session bus.
type PortalSource struct {
	conn *dbus.Conn
	obj  dbus.BusObject
	done chan struct{}
}

// NewPortalSource connects to the session bus. The portal object itself is
// not probed here; a missing portal surfaces as a ReadAll error.
func NewPortalSource() (*PortalSource, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("settings: session bus: %w", err)
	}
	return &PortalSource{
		conn: conn,
		obj:  conn.Object(portalService, portalPath),
		done: make(chan struct{}),
	}, nil
}

// ReadAll calls the portal's ReadAll method for the given namespaces and
// unwraps the variant values.
func (s *PortalSource) ReadAll(groups []string) (Snapshot, error) {
	var raw map[string]map[string]dbus.Variant
	call := s.obj.Call(portalInterface+".ReadAll", 0, groups)
	if err := call.Store(&raw); err != nil {
		return nil, fmt.Errorf("settings: portal ReadAll: %w", err)
	}

	snap := make(Snapshot, len(raw))
	for group, kv := range raw {
		values := make(map[string]interface{}, len(kv))
		for key, v := range kv {
			values[key] = unwrapVariant(v)
		}
		snap[group] = values
	}
	return snap, nil
}

// Subscribe installs a match rule for the portal's SettingChanged signal and
// pumps matching signals to fn from a dedicated goroutine.
func (s *PortalSource) Subscribe(fn func(group, key string, value interface{})) error {
	err := s.conn.AddMatchSignal(
		dbus.WithMatchObjectPath(portalPath),
		dbus.WithMatchInterface(portalInterface),
		dbus.WithMatchMember(settingChanged),
	)
	if err != nil {
		return fmt.Errorf("settings: subscribe: %w", err)
	}

	ch := make(chan *dbus.Signal, 16)
	s.conn.Signal(ch)

	go func() {
		for {
			select {
			case <-s.done:
				s.conn.RemoveSignal(ch)
				return
			case sig, ok := <-ch:
				if !ok {
					return
				}
				if sig == nil || len(sig.Body) != 3 {
					continue
				}
				group, _ := sig.Body[0].(string)
				key, _ := sig.Body[1].(string)
				value := sig.Body[2]
				if v, ok := value.(dbus.Variant); ok {
					value = unwrapVariant(v)
				}
				fn(group, key, value)
			}
		}
	}()
	return nil
}

// Close stops the signal pump and drops the bus connection.
func (s *PortalSource) Close() error {
	close(s.done)
	return s.conn.Close()
}

// unwrapVariant peels nested variants; the portal double-wraps values in
// SettingChanged bodies.
func unwrapVariant(v dbus.Variant) interface{} {
	val := v.Value()
	if inner, ok := val.(dbus.Variant); ok {
		return unwrapVariant(inner)
	}
	return val
}
