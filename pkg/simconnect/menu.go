package simconnect

import "github.com/flightlink/simconnect-go/internal/bindings"

// MenuAddItem adds an entry to the simulator's Add-ons menu. Selecting it
// fires event with data.
func (c *Conn) MenuAddItem(item string, event ClientEventID, data uint32) error {
	hr := c.api.MenuAddItem(c.handle, cString(item), bindings.SIMCONNECT_CLIENT_EVENT_ID(event), data)
	return c.check(hr, "SimConnect_MenuAddItem")
}

// MenuAddSubItem adds an entry below the menu item registered for parent.
func (c *Conn) MenuAddSubItem(parent ClientEventID, item string, event ClientEventID, data uint32) error {
	hr := c.api.MenuAddSubItem(c.handle, bindings.SIMCONNECT_CLIENT_EVENT_ID(parent), cString(item),
		bindings.SIMCONNECT_CLIENT_EVENT_ID(event), data)
	return c.check(hr, "SimConnect_MenuAddSubItem")
}

func (c *Conn) MenuDeleteItem(event ClientEventID) error {
	hr := c.api.MenuDeleteItem(c.handle, bindings.SIMCONNECT_CLIENT_EVENT_ID(event))
	return c.check(hr, "SimConnect_MenuDeleteItem")
}

func (c *Conn) MenuDeleteSubItem(parent, event ClientEventID) error {
	hr := c.api.MenuDeleteSubItem(c.handle, bindings.SIMCONNECT_CLIENT_EVENT_ID(parent),
		bindings.SIMCONNECT_CLIENT_EVENT_ID(event))
	return c.check(hr, "SimConnect_MenuDeleteSubItem")
}
