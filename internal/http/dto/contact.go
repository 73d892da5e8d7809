package dto

import "github.com/0tsuro/SparkCar/internal/model"

// ContactResponse is the body of every /api/contact answer.
type ContactResponse struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

type ContactInfoResponse struct {
	Contact model.ContactInfo `json:"contact"`
}
