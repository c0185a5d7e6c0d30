package simconnect

import "fmt"

// GetLastSentPacketID returns the id of the last packet sent to the
// simulator, which RecvException.DwSendID refers back to.
func (c *Conn) GetLastSentPacketID() (uint32, error) {
	var id uint32
	if err := c.check(c.api.GetLastSentPacketID(c.handle, &id), "SimConnect_GetLastSentPacketID"); err != nil {
		return 0, err
	}
	return id, nil
}

// RequestResponseTimes returns up to count round trip timings, in seconds,
// measured by the SDK.
func (c *Conn) RequestResponseTimes(count int) ([]float32, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: response time count %d", ErrInvalidArgument, count)
	}
	times := make([]float32, count)
	hr := c.api.RequestResponseTimes(c.handle, uint32(count), &times[0])
	if err := c.check(hr, "SimConnect_RequestResponseTimes"); err != nil {
		return nil, err
	}
	return times, nil
}
