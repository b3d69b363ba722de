package handler

const (
	statusSuccess = "Successfully"
	statusFail    = "Fail"
)

type InsightRequest struct {
	TopicIDs  []string `json:"topic_ids" binding:"required,min=1"`
	FromDate1 string   `json:"from_date1" binding:"required"`
	ToDate1   string   `json:"to_date1" binding:"required"`
	FromDate2 string   `json:"from_date2" binding:"required"`
	ToDate2   string   `json:"to_date2" binding:"required"`
}

// Envelope is the fixed response shape for every insight endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func successResponse(data any) Envelope {
	return Envelope{Status: statusSuccess, Message: "Success", Data: data}
}

func failResponse(message string) Envelope {
	return Envelope{Status: statusFail, Message: message, Data: nil}
}
