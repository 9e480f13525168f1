package httpapi

import (
	"time"

	"github.com/jobinow/jobinow/internal/server/models"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type changePasswordRequest struct {
	CurrentPassword      string `json:"currentPassword" binding:"required"`
	NewPassword          string `json:"newPassword" binding:"required,min=8"`
	ConfirmationPassword string `json:"confirmationPassword" binding:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}

type pageResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

func toUserPage(p *models.Page[*models.User]) pageResponse[userResponse] {
	items := make([]userResponse, 0, len(p.Items))
	for _, u := range p.Items {
		items = append(items, toUserResponse(u))
	}
	return pageResponse[userResponse]{Items: items, Page: p.Page, Size: p.Size, Total: p.Total}
}

type offerRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Salary      float64 `json:"salary"`
	Status      string  `json:"status"`
}

type offerResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      float64   `json:"salary"`
	RecruiterID string    `json:"recruiterId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toOfferResponse(o *models.Offer) offerResponse {
	return offerResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Company:     o.Company,
		Location:    o.Location,
		Salary:      o.Salary,
		RecruiterID: o.RecruiterID,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}

func toOfferResponses(offers []*models.Offer) []offerResponse {
	items := make([]offerResponse, 0, len(offers))
	for _, o := range offers {
		items = append(items, toOfferResponse(o))
	}
	return items
}

func toOfferPage(p *models.Page[*models.Offer]) pageResponse[offerResponse] {
	return pageResponse[offerResponse]{Items: toOfferResponses(p.Items), Page: p.Page, Size: p.Size, Total: p.Total}
}

type applyRequest struct {
	OfferID   string `json:"offerId" binding:"required,uuid"`
	Type      string `json:"type"`
	ResumeKey string `json:"resumeKey"`
}

type applyResponse struct {
	ID          string    `json:"id"`
	OfferID     string    `json:"offerId"`
	JobSeekerID string    `json:"jobSeekerId"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	ResumeKey   string    `json:"resumeKey,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toApplyResponse(a *models.Apply) applyResponse {
	return applyResponse{
		ID:          a.ID,
		OfferID:     a.OfferID,
		JobSeekerID: a.JobSeekerID,
		Status:      string(a.Status),
		Type:        string(a.Type),
		ResumeKey:   a.ResumeKey,
		CreatedAt:   a.CreatedAt,
	}
}

func toApplyResponses(applies []*models.Apply) []applyResponse {
	items := make([]applyResponse, 0, len(applies))
	for _, a := range applies {
		items = append(items, toApplyResponse(a))
	}
	return items
}

type subscriptionRequest struct {
	PackID string `json:"packId" binding:"required,uuid"`
}

type subscriptionResponse struct {
	ID          string    `json:"id"`
	JobSeekerID string    `json:"jobSeekerId"`
	PackID      string    `json:"packId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type tagRequest struct {
	Name string `json:"name" binding:"required"`
}

type presignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
