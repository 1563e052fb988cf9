package response

import "neko-hotel/internal/usecase/commands"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.Token,
		Username:    result.Username,
	}
}
