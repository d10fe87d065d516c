package entities

// PriceBound is the optional [Min, Max] price query of a service listing
type PriceBound struct {
	Min *float64
	Max *float64
}

// Active reports whether the bound filters anything at all.
// A missing bound, Min < 1 or Max < Min leave listings untouched.
func (b PriceBound) Active() bool {
	if b.Min == nil || b.Max == nil {
		return false
	}
	return *b.Min >= 1 && *b.Max >= *b.Min
}

// Matches reports whether a price falls inside the bound. Range prices are
// matched on MaxPrice only; MinPrice takes no part in the test.
func (b PriceBound) Matches(p PriceSpec) bool {
	if !b.Active() {
		return true
	}
	lo, hi := *b.Min, *b.Max
	if p.Price != 0 && lo <= p.Price && p.Price <= hi {
		return true
	}
	return p.MaxPrice != 0 && lo <= p.MaxPrice && p.MaxPrice <= hi
}

// Select returns the services matching the bound, keeping their order.
// An inactive bound returns the input slice as is.
func (b PriceBound) Select(services []*Service) []*Service {
	if !b.Active() {
		return services
	}
	selected := make([]*Service, 0, len(services))
	for _, s := range services {
		if b.Matches(s.PriceSpec) {
			selected = append(selected, s)
		}
	}
	return selected
}
