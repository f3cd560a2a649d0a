package model

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type UserListResponse struct {
	Data []User `json:"data"`
}
