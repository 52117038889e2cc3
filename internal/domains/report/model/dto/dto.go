package dto

type Stats struct {
	TotalClients       int            `json:"total_clients"`
	ByStatus           map[string]int `json:"by_status"`
	ByGroupType        map[string]int `json:"by_group_type"`
	MonthlySubmissions map[string]int `json:"monthly_submissions"`
	UpcomingArrivals   int            `json:"upcoming_arrivals"`
}

type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}
