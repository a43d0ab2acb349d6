package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
