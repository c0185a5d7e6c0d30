package simconnect

import "github.com/flightlink/simconnect-go/internal/bindings"

// MapClientEventToSimEvent binds a client event id to a simulator event. An
// empty name reserves the id for a custom event.
func (c *Conn) MapClientEventToSimEvent(event ClientEventID, name string) error {
	hr := c.api.MapClientEventToSimEvent(c.handle, bindings.SIMCONNECT_CLIENT_EVENT_ID(event), cString(name))
	return c.check(hr, "SimConnect_MapClientEventToSimEvent")
}

// TransmitClientEvent sends event with data to obj through group.
func (c *Conn) TransmitClientEvent(obj ObjectID, event ClientEventID, data uint32,
	group NotificationGroupID, flags EventFlag) error {
	hr := c.api.TransmitClientEvent(c.handle, bindings.SIMCONNECT_OBJECT_ID(obj),
		bindings.SIMCONNECT_CLIENT_EVENT_ID(event), data,
		bindings.SIMCONNECT_NOTIFICATION_GROUP_ID(group), flags.native())
	return c.check(hr, "SimConnect_TransmitClientEvent")
}

// TransmitClientEventEX1 is TransmitClientEvent with five data words.
func (c *Conn) TransmitClientEventEX1(obj ObjectID, event ClientEventID, group NotificationGroupID,
	flags EventFlag, data [5]uint32) error {
	hr := c.api.TransmitClientEventEX1(c.handle, bindings.SIMCONNECT_OBJECT_ID(obj),
		bindings.SIMCONNECT_CLIENT_EVENT_ID(event), bindings.SIMCONNECT_NOTIFICATION_GROUP_ID(group),
		flags.native(), data[0], data[1], data[2], data[3], data[4])
	return c.check(hr, "SimConnect_TransmitClientEventEX1")
}

func (c *Conn) SetSystemEventState(event ClientEventID, state State) error {
	hr := c.api.SetSystemEventState(c.handle, bindings.SIMCONNECT_CLIENT_EVENT_ID(event), state.native())
	return c.check(hr, "SimConnect_SetSystemEventState")
}

// AddClientEventToNotificationGroup adds event to group. A maskable event is
// not passed on to lower priority groups.
func (c *Conn) AddClientEventToNotificationGroup(group NotificationGroupID, event ClientEventID, maskable bool) error {
	hr := c.api.AddClientEventToNotificationGroup(c.handle, bindings.SIMCONNECT_NOTIFICATION_GROUP_ID(group),
		bindings.SIMCONNECT_CLIENT_EVENT_ID(event), cBool(maskable))
	return c.check(hr, "SimConnect_AddClientEventToNotificationGroup")
}

func (c *Conn) RemoveClientEvent(group NotificationGroupID, event ClientEventID) error {
	hr := c.api.RemoveClientEvent(c.handle, bindings.SIMCONNECT_NOTIFICATION_GROUP_ID(group),
		bindings.SIMCONNECT_CLIENT_EVENT_ID(event))
	return c.check(hr, "SimConnect_RemoveClientEvent")
}

// SetNotificationGroupPriority sets the priority of group, one of the
// GroupPriority constants or a value between them.
func (c *Conn) SetNotificationGroupPriority(group NotificationGroupID, priority uint32) error {
	hr := c.api.SetNotificationGroupPriority(c.handle, bindings.SIMCONNECT_NOTIFICATION_GROUP_ID(group), priority)
	return c.check(hr, "SimConnect_SetNotificationGroupPriority")
}

func (c *Conn) ClearNotificationGroup(group NotificationGroupID) error {
	hr := c.api.ClearNotificationGroup(c.handle, bindings.SIMCONNECT_NOTIFICATION_GROUP_ID(group))
	return c.check(hr, "SimConnect_ClearNotificationGroup")
}

// RequestNotificationGroup asks for the events of group. reserved must be 0.
func (c *Conn) RequestNotificationGroup(group NotificationGroupID, reserved, flags uint32) error {
	hr := c.api.RequestNotificationGroup(c.handle, bindings.SIMCONNECT_NOTIFICATION_GROUP_ID(group), reserved, flags)
	return c.check(hr, "SimConnect_RequestNotificationGroup")
}

// SubscribeToSystemEvent delivers the system event name, such as "Pause" or
// "SimStart", as event.
func (c *Conn) SubscribeToSystemEvent(event ClientEventID, name string) error {
	hr := c.api.SubscribeToSystemEvent(c.handle, bindings.SIMCONNECT_CLIENT_EVENT_ID(event), cString(name))
	return c.check(hr, "SimConnect_SubscribeToSystemEvent")
}

func (c *Conn) UnsubscribeFromSystemEvent(event ClientEventID) error {
	hr := c.api.UnsubscribeFromSystemEvent(c.handle, bindings.SIMCONNECT_CLIENT_EVENT_ID(event))
	return c.check(hr, "SimConnect_UnsubscribeFromSystemEvent")
}
