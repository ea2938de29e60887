package request

type UpsertRuleRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Active    bool   `json:"active"`
}

type CreateTimeOffRequest struct {
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}
