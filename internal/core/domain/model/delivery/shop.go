package delivery

// Shop is a store where orders can be collected. It is plain data without invariants.
type Shop struct {
	name     string
	location string
}

// NewShop creates a shop.
func NewShop(name string, location string) *Shop {
	return &Shop{name: name, location: location}
}

// Name returns the shop name.
func (s *Shop) Name() string {
	return s.name
}

// Location returns where the shop is.
func (s *Shop) Location() string {
	return s.location
}

// SetName replaces the shop name.
func (s *Shop) SetName(name string) {
	s.name = name
}

// SetLocation replaces the shop location.
func (s *Shop) SetLocation(location string) {
	s.location = location
}
