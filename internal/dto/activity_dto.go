package dto

type CreateActivityRequest struct {
	UserID  string `json:"userId"`
	Type    string `json:"type"`
	Details string `json:"details"`
}
