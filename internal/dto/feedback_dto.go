package dto

type CreateFeedbackRequest struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Message   string `json:"message"`
}

type UpdateFeedbackStatusRequest struct {
	Status string `json:"status"`
}
