package response

import (
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	TokenType   string                      `json:"token_type"`
	ExpiresIn   int64                       `json:"expires_in"`
	User        *queries.AuthorizedUserView `json:"user,omitempty"`
}

func FromLoginResult(r *commands.LoginResult, u *queries.AuthorizedUserView) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   r.ExpiresIn,
		User:        u,
	}
}
