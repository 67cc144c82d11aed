package dto

// --- Stats Responses ---

// PendingReviewsDetails - активные проекты менеджера по текущим этапам
type PendingReviewsDetails struct {
	Scenario    int `json:"scenario"`
	Material    int `json:"material"`
	Publication int `json:"publication"`
}

type ManagerStatsResponse struct {
	ActiveProjects        int                   `json:"activeProjects"`
	CompletedProjects     int                   `json:"completedProjects"`
	InfluencersCount      int                   `json:"influencersCount"`
	PendingReviews        int                   `json:"pendingReviews"`
	PendingReviewsDetails PendingReviewsDetails `json:"pendingReviewsDetails"`
}

type InfluencerStatsResponse struct {
	ActiveProjects    int `json:"activeProjects"`
	CompletedProjects int `json:"completedProjects"`
	NeedsAction       int `json:"needsAction"`
	MonthlyIncome     int `json:"monthlyIncome"`
}
