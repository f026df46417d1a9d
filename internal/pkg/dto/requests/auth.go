package requests

type LoginForm struct {
	Username string `form:"username" json:"username" validate:"required,notblank"`
	Password string `form:"password" json:"password" validate:"required"`
}

type ChatbotMessage struct {
	Message string `form:"message" json:"message" validate:"required,notblank,max=2000"`
}

// RegisterForm is sent as is; the confirmation never leaves the portal.
type RegisterForm struct {
	Username        string `form:"username" json:"username" validate:"required,notblank"`
	Email           string `form:"email" json:"email" validate:"required,email"`
	Password        string `form:"password" json:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" json:"-" validate:"required,eqfield=Password"`
}

type ProfileForm struct {
	Name  string `form:"name" json:"name" validate:"required,notblank"`
	Email string `form:"email" json:"email" validate:"omitempty,email"`
	Phone string `form:"phone" json:"phone"`
}

type ChangePasswordForm struct {
	CurrentPassword string `form:"current_password" json:"current_password" validate:"required"`
	NewPassword     string `form:"new_password" json:"new_password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" json:"-" validate:"required,eqfield=NewPassword"`
}
