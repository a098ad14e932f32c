package domain

// Customer is the advertiser profile linked to a user account.
type Customer struct {
	ID          int64
	UserID      int64
	CompanyName string
}

// Distributor is the distributor profile linked to a user account. City
// is the region the distributor operates in and is what campaign
// region lists are matched against.
type Distributor struct {
	ID     int64
	UserID int64
	City   string
}
