package response

import (
	"time"

	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RuleResponse struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    bool   `json:"active"`
}

func FromRuleRM(rm *readmodel.RuleRM) *RuleResponse {
	return &RuleResponse{
		Weekday:   rm.Weekday,
		StartTime: rm.StartTime,
		EndTime:   rm.EndTime,
		Active:    rm.Active,
	}
}

func FromRuleRMs(rms []*readmodel.RuleRM) []*RuleResponse {
	responses := make([]*RuleResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, FromRuleRM(rm))
	}
	return responses
}

type TimeOffResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromTimeOffRM(rm *readmodel.TimeOffRM) *TimeOffResponse {
	return &TimeOffResponse{
		ID:        rm.ID,
		Date:      rm.Date.Format("2006-01-02"),
		StartTime: rm.StartTime,
		EndTime:   rm.EndTime,
		Reason:    rm.Reason,
		CreatedAt: rm.CreatedAt,
	}
}

func FromTimeOffRMs(rms []*readmodel.TimeOffRM) []*TimeOffResponse {
	responses := make([]*TimeOffResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, FromTimeOffRM(rm))
	}
	return responses
}
