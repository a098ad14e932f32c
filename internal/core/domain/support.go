package domain

import "time"

// Support is a physical advertising material type, e.g. a branded bag.
// Price is the unit price in integer millimes.
type Support struct {
	ID        int64
	Name      string
	Price     int64
	ImageName string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupportAllocation records how many units of a support are earmarked
// for a campaign and how many have been handed out so far. Distributed
// is monotonically non-decreasing and never exceeds Allocated.
type SupportAllocation struct {
	CampaignID  int64
	SupportID   int64
	Allocated   int
	Distributed int
}

// Remaining returns the number of units still to distribute.
func (a SupportAllocation) Remaining() int {
	return a.Allocated - a.Distributed
}
