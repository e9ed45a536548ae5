package models

// DashboardSnapshot is the single computed summary for one point in time.
// All counts and sums derive from the store collections; see
// services.ComputeSnapshot for the aggregation rules.
type DashboardSnapshot struct {
	Date  string `json:"date"`  // the "today" the snapshot was computed for
	Month string `json:"month"` // YYYY-MM prefix of Date

	TotalRooms    int `json:"totalRooms"`
	OccupiedRooms int `json:"occupiedRooms"`
	DirtyRooms    int `json:"dirtyRooms"`
	CleanRooms    int `json:"cleanRooms"`

	TodayCheckIns  int `json:"todayCheckIns"`
	TodayCheckOuts int `json:"todayCheckOuts"`
	ActiveBanquets int `json:"activeBanquets"`

	AvailableTables    int `json:"availableTables"`
	OccupiedTables     int `json:"occupiedTables"`
	PendingRoomService int `json:"pendingRoomService"`

	TodayRevenue float64 `json:"todayRevenue"`
	MonthRevenue float64 `json:"monthRevenue"`
}
