package inbound

import "github.com/ShawnC4/valuelabs/internal/employee/entity"

const welcomeMessage = "Welcome to the Employee Information API"

type WelcomeResponse struct {
	Message string `json:"message"`
}

type FileResponse struct {
	Rows []entity.Row `json:"rows"`
}
