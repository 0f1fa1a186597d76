package acdomain

type Contact struct {
	ID      string     `json:"id"`
	Email   string     `json:"email"`
	Deleted FlexString `json:"deleted"`
}

type ContactsResponse struct {
	Contacts []Contact `json:"contacts"`
	Meta     Meta      `json:"meta"`
}

// ContactTotals é o total declarado em meta.total e os excluídos da primeira página
type ContactTotals struct {
	Total   int
	Deleted int
}

func (c ContactTotals) Active() int {
	if c.Total-c.Deleted < 0 {
		return 0
	}
	return c.Total - c.Deleted
}

// AccountView é a resposta de account_view da API legada
type AccountView struct {
	SubscriberLimit int
}

type AccountInfo struct {
	ContactCount int
	ContactLimit int
}

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UserResponse struct {
	User User `json:"user"`
}
