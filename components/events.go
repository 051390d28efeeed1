package components

import (
	"github.com/automoto/lastpenguin/config"
	"github.com/yohamta/donburi"
)

// EventsData queues events raised during a tick until the host drains them.
type EventsData struct {
	Pending []config.Event
}

var Events = donburi.NewComponentType[EventsData]()
