package responses

import "strings"

type AuthToken struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
}

func (p Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Username
	}
	return name
}

type ChatbotReply struct {
	Response string `json:"response"`
}
