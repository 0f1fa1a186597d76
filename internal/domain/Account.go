package domain

import "time"

type Account struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	BaseURL         string     `json:"baseUrl"`
	APIKey          string     `json:"-"`
	IsActive        bool       `json:"isActive"`
	ContactCount    int        `json:"contactCount"`
	ContactLimit    *int       `json:"contactLimit,omitempty"`
	LastContactSync *time.Time `json:"lastContactSync,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreateAccountRequest struct {
	Name     string `json:"name"`
	BaseURL  string `json:"baseUrl"`
	APIKey   string `json:"apiKey"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type UpdateAccountRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	BaseURL  *string `json:"baseUrl,omitempty"`
	APIKey   *string `json:"apiKey,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type AccountResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	BaseURL         string     `json:"baseUrl"`
	IsActive        bool       `json:"isActive"`
	HasAPIKey       bool       `json:"hasApiKey"`
	ContactCount    int        `json:"contactCount"`
	ContactLimit    *int       `json:"contactLimit,omitempty"`
	ContactUsage    *float64   `json:"contactUsage,omitempty"`
	LastContactSync *time.Time `json:"lastContactSync,omitempty"`
}

// AccountContactStats é o resultado best-effort da etapa de contatos do sync
type AccountContactStats struct {
	ContactCount int
	ContactLimit *int
	SyncedAt     time.Time
}

type ConnectionTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
}
