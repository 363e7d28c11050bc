package component

// ExperienceOrb - сфера опыта в пуле.
type ExperienceOrb struct {
	Index     int
	Active    bool
	Position  Position
	Value     float64
	Remaining float64 // оставшееся время жизни, сек
	Attracted bool    // игрок в радиусе магнита
}
