package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers current health, never below zero, and reports whether the
// entity is now out of health.
func (h *HealthData) Damage(amount int) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

var Health = donburi.NewComponentType[HealthData]()
